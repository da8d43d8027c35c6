package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ qua channel để không block goroutine gọi log
type AsyncHook struct {
	writers  []io.Writer
	entries  chan *logrus.Entry
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewAsyncHookWithWriters tạo async hook với danh sách writers và buffer size
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
		stopCh:  make(chan struct{}),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các levels mà hook xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đẩy entry vào channel, không block nếu channel đầy
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	// Copy entry vì logrus tái sử dụng entry sau khi Fire trả về
	entryCopy := *entry

	select {
	case h.entries <- &entryCopy:
		return nil
	default:
		// Channel đầy, bỏ entry để tránh block caller
		return nil
	}
}

// processEntries xử lý entries từ channel và ghi vào writers
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("AsyncHook panic recovered: %v\n", r)
		}
	}()

	for {
		select {
		case entry := <-h.entries:
			h.writeEntry(entry)
		case <-h.stopCh:
			// Flush các entries còn lại trước khi dừng
			for {
				select {
				case entry := <-h.entries:
					h.writeEntry(entry)
				default:
					return
				}
			}
		}
	}
}

// writeEntry format và ghi một entry vào tất cả writers
func (h *AsyncHook) writeEntry(entry *logrus.Entry) {
	serialized, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		fmt.Printf("Failed to format log entry: %v\n", err)
		return
	}

	for _, w := range h.writers {
		if _, err := w.Write(serialized); err != nil {
			fmt.Printf("Failed to write log entry: %v\n", err)
		}
	}
}

// Stop dừng hook và flush các entries còn lại
func (h *AsyncHook) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		h.wg.Wait()
	})
}
