// Package manifest loads enum declarations from YAML or JSON files and turns
// them into the containers templates consume.
//
// A manifest lists declarations; each names a template (inline or by file),
// its cases and an optional allowed-comments restriction:
//
//	declarations:
//	  - name: Shape
//	    location: {file: shape.go, line: 3, column: 1}
//	    templateFile: enum
//	    allowedComments:
//	      keys: [summary]
//	      location: {file: shape.go, line: 1, column: 1}
//	    cases:
//	      - name: circle
//	        parameters: [{name: radius, type: Double}]
//	        comments: ["summary: a round shape"]
package manifest
