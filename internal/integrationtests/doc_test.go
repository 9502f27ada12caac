// Package integrationtests runs the whole application, from manifest or map
// file on disk to the printed report lines.
package integrationtests
