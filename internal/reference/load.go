package reference

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads a YAML or JSON file and overlays it on the built-in tables. Map
// entries in the file replace or extend the defaults key by key; non-empty
// lists replace the default list. An empty path returns the defaults.
func Load(path string) (*Data, error) {
	data := Default()

	path = strings.TrimSpace(path)
	if path == "" {
		return data, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading reference file %q: %w", path, err)
	}

	var overlay Data
	if err := v.Unmarshal(&overlay); err != nil {
		return nil, fmt.Errorf("decoding reference file %q: %w", path, err)
	}

	data.merge(&overlay)
	return data, nil
}

func (d *Data) merge(o *Data) {
	for name, ind := range o.Industries {
		d.Industries[Key(name)] = ind
	}
	for industry, roles := range o.Roles {
		industry = Key(industry)
		if d.Roles[industry] == nil {
			d.Roles[industry] = make(map[string]Role)
		}
		for name, r := range roles {
			d.Roles[industry][Slug(name)] = r
		}
	}
	for from, to := range o.HighTransferability {
		d.HighTransferability[Key(from)] = to
	}
	for verb, skills := range o.ActionVerbs {
		d.ActionVerbs[Key(verb)] = skills
	}
	for alias, canonical := range o.SkillAliases {
		d.SkillAliases[Key(alias)] = Key(canonical)
	}

	replace := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	replace(&d.SoftSkills, o.SoftSkills)
	replace(&d.TechnicalSkills, o.TechnicalSkills)
	replace(&d.Certifications, o.Certifications)
	replace(&d.TransferableSkills, o.TransferableSkills)
	replace(&d.LeadershipKeywords, o.LeadershipKeywords)
	replace(&d.GenericSkills, o.GenericSkills)
	replace(&d.StopWords, o.StopWords)

	if len(o.Concepts) > 0 {
		d.Concepts = o.Concepts
	}
}
