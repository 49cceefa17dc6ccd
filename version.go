package main

// _version is the version of mdx2html.
//
// This is set automatically for release builds.
var _version = "dev"
