// Package modelfile reads an HMM model bundle from YAML or JSON.
//
// Document shape (YAML shown, JSON uses the same keys):
//
//	states: [verb, noun, adj]        # order matters: it breaks ties
//	initial:    {verb: 1, noun: 2, adj: 3}
//	transition:                      # transition[from][to]
//	  verb: {verb: 1, noun: 2, adj: 2}
//	emission:                        # emission[observation][state]
//	  iron: {verb: 2, noun: 3}
//
// Absent entries are left absent; whether they weigh 0 or fail is decided by
// the decoder's lookup policy. Every loaded model is checked with
// hmm.Model.Validate before it is returned.
//
// The package only reads models. Writing them back is out of scope.
package modelfile
