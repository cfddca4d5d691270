package counterfile

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema for store documents, for external
// tooling that inspects or generates them.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&Document{})
}
