// Package services orchestrates a descriptor generation run.
//
// Generator ties the pieces together in a fixed order:
//  1. Write META-INF/quarkus-extension.properties
//  2. Load the existing descriptor, if any, and migrate it
//  3. Hand the migrated document to the LegacySink when legacy sync is enabled
//  4. Apply defaults from the project coordinates
//  5. Write META-INF/quarkus-extension.json
//
// All file access goes through filesystem.FileSystemProvider, so runs can be
// tested against filesystem.MemoryFileSystem.
package services
