package csvdata

import (
	"strings"
	"testing"
)

const membersHeader = "Name,Batch,Role,Company,LinkedIn,ImageUrl,Bio,Expertise,Achievements\n"

func TestParseMembersMapsByHeaderName(t *testing.T) {
	csv := membersHeader +
		`Jane Doe,B12,President,Acme,linkedin.com/in/jane,/images/jane.png,Builder,"Marketing, Sales",Raised seed round` + "\n"

	members, err := ParseMembers(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseMembers returned error: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}

	m := members[0]
	if m.Name != "Jane Doe" || m.Batch != "B12" || m.Role != "President" {
		t.Fatalf("unexpected member fields: %+v", m)
	}
	if m.Company != "Acme" || m.LinkedinURL != "linkedin.com/in/jane" {
		t.Fatalf("unexpected member fields: %+v", m)
	}
	if len(m.Expertise) != 2 || m.Expertise[0] != "Marketing" || m.Expertise[1] != "Sales" {
		t.Fatalf("expected expertise split and trimmed, got %v", m.Expertise)
	}
}

func TestParseMembersRequiresHeaderAndOneRow(t *testing.T) {
	members, err := ParseMembers(strings.NewReader(membersHeader))
	if err != nil {
		t.Fatalf("ParseMembers returned error: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("expected no members from header-only file, got %d", len(members))
	}
}

func TestParseMembersFallsBackToPlaceholderImage(t *testing.T) {
	csv := membersHeader + "Jane Doe,B12,President,,,,,,\n"

	members, err := ParseMembers(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseMembers returned error: %v", err)
	}
	if members[0].ImageURL != memberImagePlaceholder {
		t.Fatalf("expected placeholder image, got %q", members[0].ImageURL)
	}
}

func TestParseMembersShortRowsYieldEmptyFields(t *testing.T) {
	csv := membersHeader + "Jane Doe,B12\n"

	members, err := ParseMembers(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseMembers returned error: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0].Role != "" || members[0].Company != "" {
		t.Fatalf("expected empty fields for short row, got %+v", members[0])
	}
}
