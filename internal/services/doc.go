// Package services contains the catalog API transport and the per-entity
// resource stores built on top of it.
//
// [Client] speaks the generic CRUD contract (GET/POST/PATCH/DELETE on a
// collection path); [Resource] owns the cached client-side copy of one
// collection and refreshes it wholesale after every mutation.
package services
