package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/go-valconf/valconf/value"
)

// expandTemplates walks v and, within every object, resolves each
// member that carries a string "template" key against a sibling
// member of the same enclosing object: the sibling's own template (if
// any) is expanded first, then a copy of the sibling is merged with
// the member (minus its local "template" key) overriding it. Applying
// this to an already-expanded tree is a no-op, since a member without
// a "template" key is left untouched.
func expandTemplates(v *value.Value) error {
	var errs error
	switch v.Type() {
	case value.TypeArray:
		elems := append([]value.Value(nil), v.Elements()...)
		for i := range elems {
			errs = multierr.Append(errs, expandTemplates(&elems[i]))
		}
		*v = value.Array(elems...)
	case value.TypeObject:
		errs = multierr.Append(errs, expandTemplatesInObject(v, map[string]bool{}))
		for i := 0; i < v.NumMembers(); i++ {
			child := v.MemberValue(i)
			errs = multierr.Append(errs, expandTemplates(&child))
			v.SetMember(v.MemberName(i), child)
		}
	}
	return errs
}

// expandTemplatesInObject resolves "template" references among obj's
// direct members, recursing into the referenced sibling first so that
// a chain of templates resolves bottom-up. inProgress guards against a
// template cycle.
func expandTemplatesInObject(obj *value.Value, inProgress map[string]bool) error {
	var errs error
	for i := 0; i < obj.NumMembers(); i++ {
		errs = multierr.Append(errs, resolveTemplateMember(obj, obj.MemberName(i), inProgress))
	}
	return errs
}

func resolveTemplateMember(obj *value.Value, key string, inProgress map[string]bool) error {
	member := obj.Member(key)
	if !member.IsObject() {
		return nil
	}
	templateRef := member.Member("template")
	if !templateRef.IsString() {
		return nil
	}
	if inProgress[key] {
		return fmt.Errorf("config: template cycle at %q", key)
	}
	inProgress[key] = true
	defer delete(inProgress, key)

	siblingName := templateRef.AsString("")
	if !obj.HasMember(siblingName) {
		return fmt.Errorf("config: unknown template key %q", siblingName)
	}
	if err := resolveTemplateMember(obj, siblingName, inProgress); err != nil {
		return err
	}

	base := obj.Member(siblingName).Clone()
	override := member.Clone()
	override.RemoveMember("template")
	base.Merge(override)
	obj.SetMember(key, base)
	return nil
}
