// Package stack loads YAML stack files describing nested sandbox layers and
// the environment each of them declares.
//
//	root: /tmp/sandbox
//	append: [PATH]
//	layers:
//	  - name: outer
//	    env:
//	      - vars: {PATH: /outer/bin, RETRIES: 3}
//	  - name: inner
//	    root: /tmp/sandbox/inner
//	    env:
//	      - vars: {HOME: {expr: 'root + "/home"'}}
//
// Layers are listed outermost first; each layer is nested inside the one
// before it. String values are used verbatim, a mapping holding only the key
// "expr" is an expression evaluated when the layer is merged, and any other
// value is rendered as JSON.
//
// Expressions are compiled with expr-lang and see the variables root and
// platform of the declaring layer, plus the function env(name) that reads the
// base environment.
package stack
