package lookup

import "testing"

func TestCharacterTable(t *testing.T) {
	chars := DefaultDomain().Characters

	name, err := chars.NameFor(0)
	if err != nil {
		t.Fatal(err)
	}
	if name != "Mario" {
		t.Errorf("NameFor(0) = %q, want Mario", name)
	}

	code, err := chars.CodeFor("bowser")
	if err != nil {
		t.Fatal(err)
	}
	if code != 9 {
		t.Errorf("CodeFor(bowser) = %d, want 9", code)
	}

	if _, err := chars.NameFor(9999); err == nil {
		t.Error("NameFor accepted an unknown code")
	}
	if _, err := chars.CodeFor("Crash Bandicoot"); err == nil {
		t.Error("CodeFor accepted an unknown name")
	}
}

func TestResolve(t *testing.T) {
	chars := DefaultDomain().Characters

	name, err := chars.Resolve(ByCode(1))
	if err != nil {
		t.Fatal(err)
	}
	if name != "Luigi" {
		t.Errorf("Resolve(ByCode(1)) = %q, want Luigi", name)
	}

	// ByName normalises to the table's canonical casing
	name, err = chars.Resolve(ByName("LUIGI"))
	if err != nil {
		t.Fatal(err)
	}
	if name != "Luigi" {
		t.Errorf("Resolve(ByName(LUIGI)) = %q, want Luigi", name)
	}
}

func TestCharacterNameNoVariant(t *testing.T) {
	d := DefaultDomain()

	name, err := d.CharacterNameNoVariant(ByName("Koopa(G)"))
	if err != nil {
		t.Fatal(err)
	}
	if name != "Koopa" {
		t.Errorf("CharacterNameNoVariant(Koopa(G)) = %q, want Koopa", name)
	}

	name, err = d.CharacterNameNoVariant(ByCode(0))
	if err != nil {
		t.Fatal(err)
	}
	if name != "Mario" {
		t.Errorf("CharacterNameNoVariant(0) = %q, want Mario", name)
	}
}

func TestValuesSeedable(t *testing.T) {
	tests := []struct {
		table *Table
		want  string
	}{
		{DefaultDomain().PitchTypes, "Curve"},
		{DefaultDomain().SwingTypes, "Slap"},
		{DefaultDomain().FinalResults, "Strikeout"},
		{DefaultDomain().Positions, "SS"},
	}
	for _, tt := range tests {
		values := tt.table.Values()
		if len(values) == 0 {
			t.Errorf("%s: Values() empty", tt.table.Label())
			continue
		}
		if !tt.table.Contains(tt.want) {
			t.Errorf("%s: missing %q", tt.table.Label(), tt.want)
		}
	}
}

func TestDuplicateNamesKeepLowestCode(t *testing.T) {
	// "Miss" appears at both ends of the contact-type code space in some
	// table revisions; whatever the codes, resolution must be stable.
	ct := DefaultDomain().ContactTypes
	for _, name := range ct.Values() {
		code, err := ct.CodeFor(name)
		if err != nil {
			t.Fatalf("CodeFor(%q): %v", name, err)
		}
		back, err := ct.NameFor(code)
		if err != nil {
			t.Fatalf("NameFor(%d): %v", code, err)
		}
		if back != name {
			t.Errorf("round trip %q -> %d -> %q", name, code, back)
		}
	}
}
