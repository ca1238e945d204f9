// Package sqlcraft is a fluent, dialect aware SQL statement builder.
//
// A Builder binds a database dialect, connection info, an id column
// convention and a value serializer. It hands out single use statement
// types (Create, Insert, Update, Delete, Select) that are configured
// fluently and executed exactly once. Statement text is assembled by an
// append only formatter that keeps positional placeholders and serialized
// bind arguments aligned: argument i always corresponds to placeholder i.
//
// Execution runs through a middleware chain; logging, metrics and tracing
// middlewares ship with the package.
package sqlcraft
