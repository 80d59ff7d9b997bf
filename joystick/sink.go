package joystick

import "log"

// MultiSink delivers every transition to each sink in order.
type MultiSink []InputSink

func (ms MultiSink) Press(k Key) {
	for _, s := range ms {
		s.Press(k)
	}
}

func (ms MultiSink) Release(k Key) {
	for _, s := range ms {
		s.Release(k)
	}
}

// LogSink logs transitions before handing them to Next (which may be nil).
type LogSink struct {
	Prefix string
	Logger *log.Logger // nil uses the standard logger
	Next   InputSink
}

func (l LogSink) Press(k Key) {
	l.printf("%skeydown key=%s code=%s keyCode=%d", l.Prefix, k.Name, k.Code, k.KeyCode)
	if l.Next != nil {
		l.Next.Press(k)
	}
}

func (l LogSink) Release(k Key) {
	l.printf("%skeyup key=%s code=%s keyCode=%d", l.Prefix, k.Name, k.Code, k.KeyCode)
	if l.Next != nil {
		l.Next.Release(k)
	}
}

func (l LogSink) printf(format string, args ...any) {
	if l.Logger != nil {
		l.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
