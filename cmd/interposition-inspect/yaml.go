package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/osoekawaitlab/interposition/cassette"
)

// yamlDocument mirrors document in package filestore, but renders each
// fingerprint as a hex string and each header pair as one "name: value"
// string, and omits the request body -- this is a debug view only, never the canonical
// persisted form (that is always the filestore's JSON).
type yamlDocument struct {
	Interactions []yamlInteraction `yaml:"interactions"`
}

type yamlInteraction struct {
	Fingerprint string                   `yaml:"fingerprint"`
	Request     yamlRequest              `yaml:"request"`
	Chunks      []cassette.ResponseChunk `yaml:"response_chunks"`
}

type yamlRequest struct {
	Protocol string   `yaml:"protocol"`
	Action   string   `yaml:"action"`
	Target   string   `yaml:"target"`
	Headers  []string `yaml:"headers"`
}

func printYAML(cmd *cobra.Command, c *cassette.Cassette) error {
	doc := yamlDocument{}
	for _, i := range c.Interactions() {
		headers := make([]string, 0, len(i.Request.Headers))
		for _, h := range i.Request.Headers {
			headers = append(headers, fmt.Sprintf("%s: %s", h.Name, h.Value))
		}

		doc.Interactions = append(doc.Interactions, yamlInteraction{
			Fingerprint: i.Fingerprint.String(),
			Request: yamlRequest{
				Protocol: i.Request.Protocol,
				Action:   i.Request.Action,
				Target:   i.Request.Target,
				Headers:  headers,
			},
			Chunks: i.ResponseChunks,
		})
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()
	return enc.Encode(doc)
}
