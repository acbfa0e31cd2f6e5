// Package domain defines the entity records held by the workspace store.
//
// All records are plain values. Mutations never edit a record in place;
// the store replaces whole collection values with new versions, so any
// snapshot handed out by the store stays stable. Cross-entity references
// (user ids, company ids, venture ids) are ids, not pointers; consumers
// join at read time.
package domain
