package iterators

func NewMock[T any](c Cursor[T]) *Mock[T] {
	return &Mock[T]{
		Cursor:      c,
		StubFirst:   c.First,
		StubNext:    c.Next,
		StubIsDone:  c.IsDone,
		StubCurrent: c.Current,
		StubErr:     c.Err,
		StubClose:   c.Close,
	}
}

type Mock[T any] struct {
	Cursor      Cursor[T]
	StubFirst   func()
	StubNext    func()
	StubIsDone  func() bool
	StubCurrent func() T
	StubErr     func() error
	StubClose   func() error
}

// wrapper

func (m *Mock[T]) First() {
	m.StubFirst()
}

func (m *Mock[T]) Next() {
	m.StubNext()
}

func (m *Mock[T]) IsDone() bool {
	return m.StubIsDone()
}

func (m *Mock[T]) Current() T {
	return m.StubCurrent()
}

func (m *Mock[T]) Err() error {
	return m.StubErr()
}

func (m *Mock[T]) Close() error {
	return m.StubClose()
}

// Reseting stubs

func (m *Mock[T]) ResetFirst() {
	m.StubFirst = m.Cursor.First
}

func (m *Mock[T]) ResetNext() {
	m.StubNext = m.Cursor.Next
}

func (m *Mock[T]) ResetIsDone() {
	m.StubIsDone = m.Cursor.IsDone
}

func (m *Mock[T]) ResetCurrent() {
	m.StubCurrent = m.Cursor.Current
}

func (m *Mock[T]) ResetErr() {
	m.StubErr = m.Cursor.Err
}

func (m *Mock[T]) ResetClose() {
	m.StubClose = m.Cursor.Close
}
