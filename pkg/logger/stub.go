package logger

// Nop returns a logger that drops everything. Handy in tests.
func Nop() Logger {
	return nop{}
}

type nop struct{}

func (nop) With(string) Logger       { return nop{} }
func (nop) Debugf(string, ...any)    {}
func (nop) Infof(string, ...any)     {}
func (nop) Warnf(string, ...any)     {}
func (nop) Errorf(string, ...any)    {}
func (nop) Panicf(string, ...any)    {}
func (nop) Debug(error)              {}
func (nop) Warn(error)               {}
func (nop) Error(error)              {}
func (nop) Panic(error)              {}
