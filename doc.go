package movebank

// This package defines the normalized record and table types for Movebank GPS tracking exports (CSV files) and the column names used to derive them. Loading tables, building GeoJSON Point and LineString features and writing GeoJSON documents are handled by the feature and operations packages.
