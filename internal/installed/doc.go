// Package installed reads the package manager's install manifest
// (vendor/composer/installed.json) into raw package records. It also
// validates a manifest against the JSON Schema embedded in schema/.
package installed
