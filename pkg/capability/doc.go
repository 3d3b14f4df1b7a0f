// Package capability separates what an abstraction needs from the concrete
// types that provide it. A Set names the methods a candidate must expose;
// Requirements collects the sets declared along a type's embedding chain so a
// refined type inherits every need of the types it embeds.
//
// The Reporter at the bottom of the package is the text sink used by
// components built on top of these checks.
package capability
