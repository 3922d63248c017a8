// Package vault unlocks encrypted authenticator backups.
//
// A backup wraps a random 32-byte master key once per enrolled slot and
// encrypts the entry database with that master key, both with AES-256-GCM
// and detached tags:
//
//	password + slot scrypt params  -> KEK        (crypto.DeriveKey)
//	KEK + slot key ++ tag          -> master key (UnlockMasterKey)
//	master key + db ++ params.tag  -> database   (DecryptDatabase)
//
// [UnlockVault] chains the steps and wipes the master key when done.
package vault
