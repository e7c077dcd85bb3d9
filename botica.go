// Package botica harvests an online pharmacy catalog, keeping only the
// products whose names appear on an essential-medicines reference list,
// and writes the result as a tabular report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, excelize/).
package botica
