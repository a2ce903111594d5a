package abi

import "fmt"

// Demo-program builtins carried alongside the core surface. These predate
// the tensor ABI proper and exist for compatibility with existing
// compiled programs.

// LoadTensorFile is a stub tensor loading path: the path is ignored and a
// fresh 16-element tensor is returned. Returns 0 at table capacity.
func (s *Surface) LoadTensorFile(path string) uint32 {
	_ = path
	return s.TensorNew(16)
}

// Display prints a tensor's handle identity.
func (s *Surface) Display(h uint32) {
	line := fmt.Sprintf("Tensor{id=%d}", h)
	s.ctx.Println(&line)
}

// ComputeGradient is a placeholder gradient op over two handles.
func (s *Surface) ComputeGradient(data, weight uint32) uint32 {
	return data + weight
}
