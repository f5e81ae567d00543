package compiler

import (
	"errors"
	"fmt"

	"github.com/evilsocket/predict/kernel"

	"github.com/evilsocket/islazy/log"
	"github.com/robertkrimen/otto"
	"github.com/robertkrimen/otto/ast"
	"github.com/robertkrimen/otto/parser"
)

// number of arguments the kernel function is called with
const numParams = 6

var (
	// ErrNoFunction is returned when the source does not declare any function.
	ErrNoFunction = errors.New("expected a function declaration")
	// ErrSignature is returned when the kernel function does not accept the expected parameters.
	ErrSignature = fmt.Errorf("expected a function with %d parameters (n, x, y, z, factor, out)", numParams)
)

// parse the source and return the first declared function.
func parse(source string) (*ast.FunctionLiteral, error) {
	program, err := parser.ParseFile(nil, "", source, 0)
	if err != nil {
		return nil, err
	}

	for _, d := range program.DeclarationList {
		if fd, ok := d.(*ast.FunctionDeclaration); ok {
			return fd.Function, nil
		}
	}

	return nil, ErrNoFunction
}

// Compile parses and defines the source of a kernel and precompiles the call
// to its first function, the returned object owns a pool of size VM clones.
func Compile(name, source string, size int) (*Kernel, error) {
	function, err := parse(source)
	if err != nil {
		return nil, err
	} else if len(function.ParameterList.List) != numParams {
		return nil, ErrSignature
	}

	// create the vm and define the kernel function
	vm := otto.New()
	if err := vm.Set("steps", kernel.Steps); err != nil {
		return nil, err
	} else if _, err := vm.Run(source); err != nil {
		return nil, err
	}

	call, err := vm.Compile("", fmt.Sprintf("%s(n, x, y, z, factor, out);", function.Name.Name))
	if err != nil {
		return nil, err
	}

	log.Debug("compiled kernel %s (function %s) with %d vm clones", name, function.Name.Name, size)

	return &Kernel{
		name:   name,
		source: source,
		call:   call,
		pool:   CreateExecutionPool(vm, size),
	}, nil
}
