// Package provider wires construction of Smart Wallet API clients from
// static configuration.
//
// ClientProvider turns a base URL and bearer credential into a ready
// walletapi.Transactor. With dry-run enabled the provider hands out a
// DryRunTransactor instead, which logs what would be submitted without
// reaching the service.
package provider
