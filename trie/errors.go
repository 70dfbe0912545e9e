// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package trie

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyMap is returned by head/first style accessors invoked on an empty
// map.
var ErrEmptyMap = stderrors.New("trie: map is empty")

// ResolverFault wraps a panic recovered from a caller-supplied Resolver. The
// map that triggered it is left untouched — no node is ever mutated, so
// there is no intermediate state to clean up.
type ResolverFault struct {
	cause error
}

func (f *ResolverFault) Error() string { return fmt.Sprintf("trie: resolver fault: %v", f.cause) }
func (f *ResolverFault) Unwrap() error { return f.cause }

func newResolverFault(recovered any) *ResolverFault {
	return &ResolverFault{cause: errors.Wrapf(panicToError(recovered), "resolver panicked")}
}

// ConsumerFault wraps a panic recovered from a caller-supplied predicate
// passed to Filter, or a sink passed to iteration.
type ConsumerFault struct {
	cause error
}

func (f *ConsumerFault) Error() string { return fmt.Sprintf("trie: consumer fault: %v", f.cause) }
func (f *ConsumerFault) Unwrap() error { return f.cause }

func newConsumerFault(recovered any) *ConsumerFault {
	return &ConsumerFault{cause: errors.Wrapf(panicToError(recovered), "predicate panicked")}
}

func panicToError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("%v", recovered)
}
