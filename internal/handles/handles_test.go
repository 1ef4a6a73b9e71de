package handles

import "testing"

func TestRegistryZeroHandlesAreReserved(t *testing.T) {
	r := NewRegistry()
	if NoDecl != 0 || NoSignature != 0 || NoMember != 0 || NoTypeSyntax != 0 {
		t.Fatal("sentinel handles must be zero")
	}
	id := r.NewDecl("node", "Foo")
	if id == NoDecl {
		t.Fatal("first issued DeclId collided with the reserved zero handle")
	}
}

func TestDeclRoundTrip(t *testing.T) {
	r := NewRegistry()
	id := r.NewDecl("payload", "Widget")
	if got := r.Decl(id); got != "payload" {
		t.Errorf("Decl() = %v, want %q", got, "payload")
	}
	if got := r.DeclName(id); got != "Widget" {
		t.Errorf("DeclName() = %q, want %q", got, "Widget")
	}
}

func TestMembersByOwnerGroupsAndSorts(t *testing.T) {
	r := NewRegistry()
	owner := r.NewDecl("class", "Point")
	m1 := r.NewMember("x", owner, "X")
	m2 := r.NewMember("y", owner, "Y")

	grouped := r.MembersByOwner()
	members, ok := grouped[owner]
	if !ok {
		t.Fatal("expected owner to have grouped members")
	}
	if len(members) != 2 || members[0] != m1 || members[1] != m2 {
		t.Errorf("MembersByOwner()[owner] = %v, want [%d %d]", members, m1, m2)
	}
}

func TestDereferencingUnregisteredHandlePanics(t *testing.T) {
	r := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when dereferencing an unregistered handle")
		}
	}()
	r.Decl(DeclId(999))
}
