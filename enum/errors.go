package enum

import "fmt"

// DuplicateMemberError reports a member name declared twice in one
// enum body. Matching values do not make a duplicate legal.
type DuplicateMemberError struct {
	Enum string
	Name Key
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("enum %s: duplicate member %s", e.Enum, e.Name)
}

// InvalidMemberValueError reports an initializer result outside the
// closed primitive domain, or a forward or undeclared reference.
type InvalidMemberValueError struct {
	Enum string
	Name Key
	Err  error
}

func (e *InvalidMemberValueError) Error() string {
	if e.Name == nil {
		return fmt.Sprintf("enum %s: %v", e.Enum, e.Err)
	}
	return fmt.Sprintf("enum %s: member %s: %v", e.Enum, e.Name, e.Err)
}

func (e *InvalidMemberValueError) Unwrap() error { return e.Err }

// MapperInvocationError reports a bare member with no
// auto-initialization policy configured, or a policy that failed.
type MapperInvocationError struct {
	Enum string
	Name Key
	Err  error
}

func (e *MapperInvocationError) Error() string {
	return fmt.Sprintf("enum %s: member %s: %v", e.Enum, e.Name, e.Err)
}

func (e *MapperInvocationError) Unwrap() error { return e.Err }
