/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"testing"
)

type referral struct {
	ID string `json:"id"`
}

type invoice struct {
	ID string `json:"id"`
}

func TestRegisterType(t *testing.T) {
	RegisterType[referral]("Referral")
	t.Cleanup(func() { Unregister("Referral") })

	name, ok := EntityName[referral]()
	if !ok || name != "Referral" {
		t.Fatalf("Expected Referral, got %q (ok=%v)", name, ok)
	}

	typ, err := TypeFor("Referral")
	if err != nil {
		t.Fatalf("TypeFor failed: %v", err)
	}
	if typ != reflect.TypeOf(referral{}) {
		t.Fatalf("Expected referral type, got %s", typ)
	}

	found := false
	for _, n := range Names() {
		if n == "Referral" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Referral missing from %v", Names())
	}

	if _, ok := EntityName[invoice](); ok {
		t.Fatal("Unregistered type should not resolve")
	}
	if _, err := TypeFor("Invoice"); err == nil {
		t.Fatal("Expected error for unregistered entity")
	}
}

func TestRegisterTypeDuplicatePanics(t *testing.T) {
	RegisterType[invoice]("Invoice")
	t.Cleanup(func() { Unregister("Invoice") })

	assertPanics := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	assertPanics("duplicate name", func() { RegisterType[referral]("Invoice") })
	assertPanics("duplicate type", func() { RegisterType[invoice]("Bill") })
}
