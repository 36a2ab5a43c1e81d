// Package server assembles the panel and research HTTP servers from
// configuration and manages their graceful shutdown.
package server
