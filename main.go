package main

import (
	"devsetup/cmd"
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// devsetup provisions a fresh macOS developer machine:
//   - Makes sure Homebrew is installed, since every other install goes through it
//   - Checks each category of tools (browsers, editors, terminals, fonts, ...) and
//     offers the missing ones in a checklist
//   - Queues the chosen installs and runs them all at once at the end, reporting
//     how many succeeded and how many failed
//   - Sets up nvm and Node.js, Git identity and SSH commit signing, and .zshrc
//     in-line, because each of those steps depends on the previous answer
func main() {
	cmd.Execute()
}
