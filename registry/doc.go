/*
Package registry binds Go entity types to entity names.

Stores are keyed by entity name ("Patient", "PhysicianGroup", ...), while typed
callers work with Go structs. Registering the pair once lets typed accessors
find the right store:

	func init() {
	    registry.RegisterType[Patient]("Patient")
	}

	name, ok := registry.EntityName[Patient]() // "Patient", true

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
