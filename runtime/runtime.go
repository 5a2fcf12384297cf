/*
Package runtime implements the runtime environment of the evaluator,
consisting of scopes and tags (variables).

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Scopes

A runtime holds a stack of scopes. The bottommost scope contains global
variables, preset by clients before evaluation starts. Assignments of the
language go into the topmost scope, which holds the variables of a session.
Resolving a variable searches from the top of the stack downwards.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glossa.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("glossa.runtime")
}

// Runtime is a type implementing a runtime environment for the evaluator.
// It is not safe for concurrent use; clients serialize access.
type Runtime struct {
	ScopeTree *ScopeTree // globals at the bottom, session on top
}

// NewRuntimeEnvironment constructs a new runtime environment with a global
// scope and an empty session scope on top of it.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.ScopeTree = new(ScopeTree)
	rt.ScopeTree.PushNewScope("globals")
	rt.ScopeTree.PushNewScope("session")
	return rt
}

// Globals returns the bottommost scope.
func (rt *Runtime) Globals() *Scope {
	return rt.ScopeTree.Globals()
}

// Session returns the topmost scope, receiving assignments.
func (rt *Runtime) Session() *Scope {
	return rt.ScopeTree.Current()
}

// Assign sets variable name in the session scope to a value of type typ.
// Returns the new tag and the previously stored tag of the session scope (or nil).
func (rt *Runtime) Assign(name string, typ int8, value interface{}) (*Tag, *Tag) {
	tag, old := rt.Session().DefineTag(name)
	if tag == nil {
		return nil, nil
	}
	tag.WithType(typ).UData = value
	tracer().P("var", name).Debugf("assigned %v", value)
	return tag, old
}

// Lookup resolves variable name, searching from the session scope down to
// the globals. Returns nil for unknown variables.
func (rt *Runtime) Lookup(name string) *Tag {
	tag, _ := rt.Session().ResolveTag(name)
	return tag
}

// Reset discards all session variables. Globals are kept.
func (rt *Runtime) Reset() {
	tracer().Debugf("discarding %d session variable(s)", rt.Session().Tags().Size())
	for rt.ScopeTree.Current() != rt.ScopeTree.Globals() {
		rt.ScopeTree.PopScope()
	}
	rt.ScopeTree.PushNewScope("session")
}
