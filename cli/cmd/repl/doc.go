// Package repl implements an interactive browser over a resolved layer
// chain. Variable names are completed with fuzzy matching as they are typed;
// pressing Enter prints the value and the layer that last changed it.
package repl
