/*
Package field holds the real-valued arrays produced by the generators.

Two-dimensional fields are *mat.Dense with rows indexing y and columns
indexing x. Three-dimensional fields are cubic Volumes. Both can be written
as CSV for external plotting tools:
	if err := field.SaveExt("speckle.csv", im); err != nil {
		log.Fatalln("save:", err)
	}
*/
package field
