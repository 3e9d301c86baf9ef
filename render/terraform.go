package render

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-errors/errors"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/zinrai/ansinv/inventory"
)

const (
	groupResourceType = "ansible_group"
	hostResourceType  = "ansible_host"
)

// Terraform renders the serialized inventory as configuration for the
// ansible/ansible Terraform provider: an ansible_group resource per group
// entry and an ansible_host resource per hostname. Host variables come from
// the hostvars table, so the last writer wins here too.
func Terraform(out inventory.Output, opts ...Option) ([]byte, error) {
	c := newConfig(opts)
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	groupLabels := newLabeler(c.log.WithValues("type", groupResourceType))
	for _, g := range out.Groups {
		block := appendResource(body, groupResourceType, groupLabels.label(g.Name))
		attrs := block.Body()
		attrs.SetAttributeValue("name", cty.StringVal(g.Name))
		if len(g.Children) > 0 {
			attrs.SetAttributeValue("children", stringList(g.Children))
		}
		if err := setVariables(attrs, g.Vars); err != nil {
			return nil, errors.WrapPrefix(err, "variables of group "+g.Name, 0)
		}
	}

	memberOf := make(map[string][]string)
	for _, g := range out.Groups {
		for _, hostname := range g.Hosts {
			memberOf[hostname] = appendUnique(memberOf[hostname], g.Name)
		}
	}

	hostLabels := newLabeler(c.log.WithValues("type", hostResourceType))
	for _, hostname := range out.Hostnames() {
		block := appendResource(body, hostResourceType, hostLabels.label(hostname))
		attrs := block.Body()
		attrs.SetAttributeValue("name", cty.StringVal(hostname))
		if groups := memberOf[hostname]; len(groups) > 0 {
			attrs.SetAttributeValue("groups", stringList(groups))
		}
		if err := setVariables(attrs, out.Meta.HostVars[hostname]); err != nil {
			return nil, errors.WrapPrefix(err, "variables of host "+hostname, 0)
		}
	}

	return hclwrite.Format(f.Bytes()), nil
}

func appendResource(body *hclwrite.Body, resourceType, label string) *hclwrite.Block {
	if len(body.Blocks()) > 0 {
		body.AppendNewline()
	}
	return body.AppendNewBlock("resource", []string{resourceType, label})
}

func setVariables(body *hclwrite.Body, vars inventory.Vars) error {
	if len(vars) == 0 {
		return nil
	}
	val, err := varsValue(vars)
	if err != nil {
		return err
	}
	body.SetAttributeValue("variables", val)
	return nil
}

// varsValue converts variables to the map(string) the provider declares.
// Strings pass through; every other value is stored as its JSON text, so
// lists and maps survive as something Ansible can parse back.
func varsValue(vars inventory.Vars) (cty.Value, error) {
	vals := make(map[string]cty.Value, len(vars))
	for key, v := range vars {
		if s, ok := v.(string); ok {
			vals[key] = cty.StringVal(s)
			continue
		}
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return cty.NilVal, errors.WrapPrefix(err, "variable "+key, 0)
		}
		vals[key] = cty.StringVal(strings.TrimSuffix(buf.String(), "\n"))
	}
	return cty.MapVal(vals), nil
}

func stringList(values []string) cty.Value {
	vals := make([]cty.Value, 0, len(values))
	for _, v := range values {
		vals = append(vals, cty.StringVal(v))
	}
	return cty.ListVal(vals)
}

func appendUnique(slice []string, element string) []string {
	for _, existing := range slice {
		if existing == element {
			return slice
		}
	}
	return append(slice, element)
}
