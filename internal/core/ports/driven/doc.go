// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ModelReader: Extracts the intermediate model from a CellDesigner document
//   - PathwayWriter: Emits the model as a BioPAX document
//   - FileSink: Scoped input reads and atomic output replacement
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or format package
package driven
