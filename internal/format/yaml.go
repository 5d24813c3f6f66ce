package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLTokens emits the tree shape with bare values at the leaves, for
// pipelines that feed YAML-native tooling.
func YAMLTokens(args Args) (string, error) {
	out, err := yaml.Marshal(rawTree(args.Dictionary.Tokens))
	if err != nil {
		return "", fmt.Errorf("failed to marshal tokens: %w", err)
	}
	return string(out), nil
}
