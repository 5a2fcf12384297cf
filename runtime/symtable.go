package runtime

import (
	"fmt"
	"sort"
)

// Symbol table for variables. Symbol tables are attached to scopes.
//

// --- Tags -------------------------------------------------------

// Tag is the variable type to be stored into symbol tables. The name 'Tag'
// keeps variables apart from the morphemes and words of the language.
//
type Tag struct {
	name  string
	Typ   int8
	UData interface{} // the variable's value
}

// Pre-defined tag types, mirroring the value types of the evaluator.
const (
	Undefined int8 = iota // null
	FloatType
	StringType
	BooleanType
)

// NewTag creates a new tag.
func NewTag(nm string) *Tag {
	var tag = &Tag{
		name: nm,
	}
	return tag
}

// WithType sets the initial type of a tag. Use as
//
//    tag := NewTag("Fugo").WithType(FloatType)
//
func (s *Tag) WithType(t int8) *Tag {
	s.Typ = t
	return s
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s':%d>", s.Name(), s.Typ)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table: make(map[string]*Tag),
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty.
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := NewTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created tag.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.Table[tag.name] = tag
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each tag in the table in order of names, executing a
// mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	names := make([]string, 0, len(t.Table))
	for k := range t.Table {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		mapper(k, t.Table[k])
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain variable definitions. Scopes link
// back to a parent scope.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines a tag in the scope. Returns the new tag and the previously
// stored tag under this key, if any.
//
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of a scope-tree-path) the tag was found in.
//
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for ; s != nil; s = s.Parent {
		if tag := s.symtab.ResolveTag(tagname); tag != nil {
			return tag, s
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------

// ScopeTree is a stack of scopes, growing from the global scope.
//
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope, containing global variables.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// PushNewScope pushes a scope onto the stack of scopes.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp)
	if scp == nil { // the new scope is the global scope
		scst.ScopeBase = newsc // make new scope anchor
	}
	scst.ScopeTOS = newsc // new scope now TOS
	tracer().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := scst.ScopeTOS
	tracer().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = scst.ScopeTOS.Parent
	return sc
}
