// Package lookup holds the fixed code/name tables of the decoded stat-file
// format and exposes them through immutable bidirectional tables. Tables are
// built once at process start and never mutated.
package lookup

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a tagged lookup argument: callers state up front whether they are
// resolving by numeric code or by name, so no key-type guessing happens
// inside the tables.
type Key struct {
	code   int
	name   string
	byName bool
}

// ByCode returns a Key that resolves by numeric code.
func ByCode(code int) Key {
	return Key{code: code}
}

// ByName returns a Key that resolves by name (case-insensitive).
func ByName(name string) Key {
	return Key{name: name, byName: true}
}

func (k Key) String() string {
	if k.byName {
		return k.name
	}
	return fmt.Sprintf("%d", k.code)
}

// Table is an immutable bidirectional code↔name mapping. Several tables map
// multiple codes to the same name (character variants, legacy aliases); for
// those, CodeFor returns the lowest code.
type Table struct {
	label  string
	byCode map[int]string
	byName map[string]int
	values []string
}

func newTable(label string, byCode map[int]string) *Table {
	codes := make([]int, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	byName := make(map[string]int, len(byCode))
	values := make([]string, 0, len(byCode))
	for _, code := range codes {
		name := byCode[code]
		folded := strings.ToLower(name)
		if _, seen := byName[folded]; !seen {
			byName[folded] = code
			values = append(values, name)
		}
	}
	return &Table{label: label, byCode: byCode, byName: byName, values: values}
}

// Label returns the table's axis label.
func (t *Table) Label() string {
	return t.label
}

// NameFor resolves a code to its canonical name.
func (t *Table) NameFor(code int) (string, error) {
	name, ok := t.byCode[code]
	if !ok {
		return "", fmt.Errorf("%s: unknown code %d", t.label, code)
	}
	return name, nil
}

// CodeFor resolves a name (case-insensitive) to its code.
func (t *Table) CodeFor(name string) (int, error) {
	code, ok := t.byName[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%s: unknown name %q", t.label, name)
	}
	return code, nil
}

// Resolve maps a tagged Key to the canonical name for this table. A ByName
// key is normalised to the table's canonical casing.
func (t *Table) Resolve(k Key) (string, error) {
	if k.byName {
		code, err := t.CodeFor(k.name)
		if err != nil {
			return "", err
		}
		return t.byCode[code], nil
	}
	return t.NameFor(k.code)
}

// Contains reports whether name is a canonical value of this table.
func (t *Table) Contains(name string) bool {
	_, ok := t.byName[strings.ToLower(name)]
	return ok
}

// Values returns the canonical names in code order, without duplicates.
// The returned slice must not be mutated.
func (t *Table) Values() []string {
	return t.values
}

// Domain bundles the canonical value tables for every categorical axis. The
// index builder seeds its buckets from these so that zero-occurrence queries
// return empty sets instead of missing-key failures.
type Domain struct {
	Characters         *Table
	CharactersNoVar    *Table
	Stadiums           *Table
	ContactTypes       *Table
	Hands              *Table
	InputDirections    *Table
	PitchTypes         *Table
	ChargeTypes        *Table
	SwingTypes         *Table
	Positions          *Table
	FielderActions     *Table
	FielderBobbles     *Table
	StealTypes         *Table
	OutTypes           *Table
	PitchResults       *Table
	PrimaryContact     *Table
	FinalResults       *Table
	ManualSelectStates *Table
}

var defaultDomain = &Domain{
	Characters:         newTable("character", characterNames),
	CharactersNoVar:    newTable("character-no-variant", characterNamesNoVariant),
	Stadiums:           newTable("stadium", stadiumNames),
	ContactTypes:       newTable("contact-type", contactTypes),
	Hands:              newTable("hand", hands),
	InputDirections:    newTable("input-direction", inputDirections),
	PitchTypes:         newTable("pitch-type", pitchTypes),
	ChargeTypes:        newTable("charge-type", chargeTypes),
	SwingTypes:         newTable("swing-type", swingTypes),
	Positions:          newTable("fielder-position", positions),
	FielderActions:     newTable("fielder-action", fielderActions),
	FielderBobbles:     newTable("fielder-bobble", fielderBobbles),
	StealTypes:         newTable("steal-type", stealTypes),
	OutTypes:           newTable("out-type", outTypes),
	PitchResults:       newTable("pitch-result", pitchResults),
	PrimaryContact:     newTable("primary-contact-result", primaryContactResults),
	FinalResults:       newTable("final-result", finalResults),
	ManualSelectStates: newTable("manual-select", manualSelectStates),
}

// DefaultDomain returns the process-wide Domain built from the fixed tables.
func DefaultDomain() *Domain {
	return defaultDomain
}

// CharacterName resolves a character key to its display name. Decoded files
// usually carry names already; numeric ids appear in some older files.
func (d *Domain) CharacterName(k Key) (string, error) {
	return d.Characters.Resolve(k)
}

// CharacterNameNoVariant resolves a character key and strips the colour or
// variant suffix ("Shy Guy(R)" becomes "Shy Guy").
func (d *Domain) CharacterNameNoVariant(k Key) (string, error) {
	name, err := d.Characters.Resolve(k)
	if err != nil {
		return "", err
	}
	code, err := d.Characters.CodeFor(name)
	if err != nil {
		return "", err
	}
	return d.CharactersNoVar.NameFor(code)
}
