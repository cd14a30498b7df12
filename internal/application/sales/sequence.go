package sales

import (
	"fmt"
	"sync"
)

// CodeSequence genera códigos de compra consecutivos con formato "C0001",
// "C0002", … Es un objeto explícito inyectado al caso de uso en vez de un
// contador global, para que cada instancia (y cada test) arranque limpio.
type CodeSequence struct {
	mu   sync.Mutex
	next int
}

// NewCodeSequence construye la secuencia iniciando en C0001.
func NewCodeSequence() *CodeSequence {
	return &CodeSequence{next: 1}
}

// Next devuelve el siguiente código y avanza la secuencia.
func (s *CodeSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := fmt.Sprintf("C%04d", s.next)
	s.next++
	return code
}
