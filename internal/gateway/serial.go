// Package gateway reads ZBHCI frames straight from a gateway's serial port.
package gateway

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"

	"cloudsmets-go/internal/ingest"
	"cloudsmets-go/internal/zbhci"
)

// SourceName tags frames read from the serial port.
const SourceName = "serial"

// SerialSource splits the serial byte stream into frames and hands each one
// to emit. emit is called from the read goroutine and must not block for long.
type SerialSource struct {
	port     io.ReadCloser
	portName string
	reader   *bufio.Reader
	emit     func(ingest.Frame)
	logger   *slog.Logger

	mu     sync.Mutex // guards framer
	framer zbhci.Framer

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// OpenSerial opens portName at 8N1 and starts reading.
func OpenSerial(portName string, baudRate int, emit func(ingest.Frame), logger *slog.Logger) (*SerialSource, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("gateway: open %s: %w", portName, err)
	}

	// USB CDC ACM bridges only forward data with DTR/RTS asserted.
	_ = port.SetDTR(true)
	_ = port.SetRTS(true)

	return NewSerialSource(port, portName, emit, logger), nil
}

// NewSerialSource starts reading frames from an already open stream.
func NewSerialSource(port io.ReadCloser, portName string, emit func(ingest.Frame), logger *slog.Logger) *SerialSource {
	s := &SerialSource{
		port:     port,
		portName: portName,
		reader:   bufio.NewReader(port),
		emit:     emit,
		logger:   logger.With("component", "serial", "port", portName),
		done:     make(chan struct{}),
	}
	s.wg.Add(1)
	go s.readLoop()
	return s
}

func (s *SerialSource) readLoop() {
	defer s.wg.Done()

	backoff := 10 * time.Millisecond
	const maxBackoff = 5 * time.Second

	buf := make([]byte, 512)
	for {
		select {
		case <-s.done:
			return
		default:
		}

		n, err := s.reader.Read(buf)
		if n > 0 {
			backoff = 10 * time.Millisecond
			s.feed(buf[:n])
		}
		if err != nil {
			select {
			case <-s.done:
				return
			default:
				if err != io.EOF && !strings.Contains(err.Error(), "closed") {
					s.logger.Error("serial read error", "err", err)
				}
				select {
				case <-time.After(backoff):
				case <-s.done:
					return
				}
				if backoff < maxBackoff {
					backoff *= 2
					if backoff > maxBackoff {
						backoff = maxBackoff
					}
				}
			}
		}
	}
}

func (s *SerialSource) feed(p []byte) {
	s.mu.Lock()
	s.framer.Write(p)
	var frames [][]byte
	for {
		frame, ok := s.framer.Next()
		if !ok {
			break
		}
		frames = append(frames, frame)
	}
	s.mu.Unlock()

	now := time.Now()
	for _, frame := range frames {
		s.logger.Debug("frame received", "len", len(frame))
		s.emit(ingest.Frame{Source: SourceName, ReceivedAt: now, Data: frame})
	}
}

// Stats returns the framer counters.
func (s *SerialSource) Stats() zbhci.FramerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.framer.Stats()
}

// Close stops reading and waits for the read goroutine to exit.
func (s *SerialSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.port.Close()
	})
	s.wg.Wait()
	return err
}
