// Package pack implements the concurrent mod archive builder.
//
// A pack operation runs in four stages: the mod descriptor (info.json) is
// read to derive the archive's top-level directory name, the source tree is
// walked to produce an ordered list of files, every file is compressed on a
// bounded worker pool, and the finished payloads are assembled into a zip
// archive in traversal order.
//
// Compression completes out of order across the pool; ordering is restored
// by giving each file an index into a pre-sized result slice that workers
// fill independently. Assembly only begins after every worker has finished,
// and the archive is staged through a temporary file so a failed or
// interrupted run never leaves a truncated zip at the destination.
package pack
