package evdev

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// rawEvent mirrors the kernel's input_event record on 64-bit targets.
type rawEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// eventIO is the shared read/write half of Device and UserDevice. A
// Device reads user-generated events and writes feedback events; a
// UserDevice does the reverse.
type eventIO struct {
	file *os.File
}

func (e *eventIO) Close() error {
	return e.file.Close()
}

// NextEvent reads a single raw event, blocking until one is available.
func (e *eventIO) NextEvent() (InputEvent, error) {
	var buf [unsafe.Sizeof(rawEvent{})]byte
	_, err := io.ReadFull(e.file, buf[:])
	if err != nil {
		return InputEvent{}, fmt.Errorf("read: %w", err)
	}

	raw := (*rawEvent)(unsafe.Pointer(&buf[0]))
	return InputEvent{
		Time:  time.Unix(raw.Sec, raw.Usec*int64(time.Microsecond)),
		Type:  EventType(raw.Type),
		Code:  raw.Code,
		Value: raw.Value,
	}, nil
}

// WriteEvent injects an event into the input subsystem. Injected events
// are queued until a synchronization event follows.
func (e *eventIO) WriteEvent(t EventType, code uint16, value int32) error {
	var buf [unsafe.Sizeof(rawEvent{})]byte
	raw := (*rawEvent)(unsafe.Pointer(&buf[0]))
	now := time.Now()
	raw.Sec = now.Unix()
	raw.Usec = int64(now.Nanosecond()) / int64(time.Microsecond)
	raw.Type = uint16(t)
	raw.Code = code
	raw.Value = value

	_, err := e.file.Write(buf[:])
	if err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// Wait blocks until the device has an event ready to read or the
// timeout passes. It reports whether an event is available.
func (e *eventIO) Wait(timeout time.Duration) (bool, error) {
	conn, err := e.file.SyscallConn()
	if err != nil {
		return false, err
	}

	var ready bool
	err = control(conn, func(fd uintptr) error {
		pfd := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(pfd, int(timeout.Milliseconds()))
		if err != nil {
			return fmt.Errorf("poll: %w", err)
		}
		ready = n != 0
		return nil
	})
	return ready, err
}

func control(conn syscall.RawConn, f func(uintptr) error) error {
	var ferr error
	err := conn.Control(func(fd uintptr) { ferr = f(fd) })
	return errors.Join(err, ferr)
}

func ioctl[T any](fd, name uintptr, data *T) unix.Errno {
	_, _, err := unix.Syscall(unix.SYS_IOCTL, fd, name, uintptr(unsafe.Pointer(data)))
	return err
}

// cctl issues an ioctl whose argument is a pointer to data.
func cctl[T any](conn syscall.RawConn, name uintptr, data *T) error {
	return control(conn, func(fd uintptr) error {
		return fromErrno(ioctl(fd, name, data))
	})
}

// vctl issues an ioctl whose argument is a plain value, not a pointer.
func vctl(conn syscall.RawConn, name, val uintptr) error {
	return control(conn, func(fd uintptr) error {
		_, _, err := unix.Syscall(unix.SYS_IOCTL, fd, name, val)
		return fromErrno(err)
	})
}

func fromErrno(err unix.Errno) error {
	if err == 0 {
		return nil
	}
	return err
}

func isBitSet(bits []byte, bit uint16) bool {
	return bits[bit/8]&(1<<(bit%8)) != 0
}

func fromNTString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
