package inventory

import (
	"bytes"
	"encoding/json"
	"io"
)

// Group returns the entry for the named group.
func (o Output) Group(name string) (GroupOutput, bool) {
	for _, g := range o.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return GroupOutput{}, false
}

// HostVars answers `--host <hostname>`: the variables recorded for hostname,
// or an empty map for an unknown host.
func (o Output) HostVars(hostname string) Vars {
	if vars, ok := o.Meta.HostVars[hostname]; ok && vars != nil {
		return vars
	}
	return Vars{}
}

// Hostnames lists every hostname once, in the order it first appears in the
// groups and then in the ungrouped list.
func (o Output) Hostnames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, g := range o.Groups {
		for _, h := range g.Hosts {
			add(h)
		}
	}
	for _, h := range o.Ungrouped {
		add(h)
	}
	return names
}

// MarshalJSON writes "ungrouped", "_meta" and then one key per group, in
// that order.
func (o Output) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if err := writeMember(&buf, ungroupedKey, nonNilStrings(o.Ungrouped)); err != nil {
		return nil, err
	}
	buf.WriteByte(',')

	hostVars := make(map[string]Vars, len(o.Meta.HostVars))
	for name, vars := range o.Meta.HostVars {
		hostVars[name] = nonNilVars(vars)
	}
	if err := writeMember(&buf, metaKey, Meta{HostVars: hostVars}); err != nil {
		return nil, err
	}

	for _, g := range o.Groups {
		buf.WriteByte(',')
		entry := GroupOutput{
			Hosts:    nonNilStrings(g.Hosts),
			Vars:     nonNilVars(g.Vars),
			Children: nonNilStrings(g.Children),
		}
		if err := writeMember(&buf, g.Name, entry); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes the output to w followed by a newline. Unlike
// json.Marshal it leaves <, > and & unescaped.
func (o Output) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(o)
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	if err := encodeValue(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return encodeValue(buf, value)
}

func encodeValue(buf *bytes.Buffer, value any) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
	return nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilVars(v Vars) Vars {
	if v == nil {
		return Vars{}
	}
	return v
}
