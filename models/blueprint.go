package models

// Blueprint is the local persona configuration document. Agents is keyed by
// difficulty tier.
type Blueprint struct {
	GlobalPolicy string           `json:"global_policy"`
	Agents       map[string]Agent `json:"agents"`
}

// Agent holds the persona instruction text for one difficulty tier.
type Agent struct {
	Prompt string `json:"prompt"`
}
