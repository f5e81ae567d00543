package compiler

import (
	"github.com/robertkrimen/otto"
)

// DefaultPoolSize is the number of VM clones created for each compiled kernel.
const DefaultPoolSize = 8

// VM is only used to wrap the vm object and give
// a Release method the caller can defer in
// order to free the VM itself transparently.
type VM struct {
	*otto.Otto
	parent *ExecutionPool
	index  int
}

// Release adds this object back to the free list of the pool.
func (w *VM) Release() {
	w.parent.freeWay <- w.index
}

// ExecutionPool is a pool of clones of a single VM that
// will be used to scale the execution of a kernel to different
// goroutines without locking one single shared VM.
type ExecutionPool struct {
	clones  []*VM
	freeWay chan int
}

// CreateExecutionPool creates an ExecutionPool object with size clones of the given VM.
func CreateExecutionPool(root *otto.Otto, size int) *ExecutionPool {
	if size < 1 {
		size = DefaultPoolSize
	}

	p := &ExecutionPool{
		clones:  make([]*VM, size),
		freeWay: make(chan int, size),
	}

	for i := 0; i < size; i++ {
		p.clones[i] = &VM{
			Otto:   root.Copy(),
			parent: p,
			index:  i,
		}
		// presignal a free object so the very first
		// loop won't wait
		p.freeWay <- i
	}

	return p
}

// Size returns the number of VM clones in the pool.
func (p *ExecutionPool) Size() int {
	return len(p.clones)
}

// Get will wait until a VM object in the pool is signaled
// as free by whoever was using it and then return it.
func (p *ExecutionPool) Get() *VM {
	return p.clones[<-p.freeWay]
}
