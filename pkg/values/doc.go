// Package values holds the containers handed to templates and the transform
// protocol templates use to query them.
//
// Every container implements Transformer. The template engine walks a dotted
// attribute path by calling Resolve once per segment; an unknown attribute
// never fails hard, it yields an absent result and an invalid-transform
// diagnostic on the pass's render.Context.
//
// Resolution order is shared by all sequence-like containers:
//
//  1. structural operations (first, last, reversed, count, isEmpty, sorted,
//     joined, keyValues);
//  2. container specific operations (for example Parameters.names);
//  3. lookup by key for key-value containers;
//  4. otherwise an invalid-transform diagnostic.
//
// sorted is only offered when the element type has a natural order, which is
// decided at runtime from the element type (see Comparer).
package values
