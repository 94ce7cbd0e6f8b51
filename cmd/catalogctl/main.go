// Command catalogctl runs operator tasks against the catalog database:
// schema migrations and reference data seeding.
package main

import "github.com/youbeemuhwan/commercial/cmd/catalogctl/commands"

func main() {
	commands.Execute()
}
