/*

Package argon implements the Argon2 password hashing function as specified
in RFC 9106

	https://www.rfc-editor.org/rfc/rfc9106.html

including the earlier revision 1.0 (Version10) for verifying old hashes.

Argon2 comes in three flavors:

Argon2i uses data-independent memory access, making it suitable for hashing secret information such as passwords.

Argon2d uses data-dependent memory access, but not suitable for hashing secret information due to potential side-channel attacks.

Argon2id uses data-independent access for the first half of the first pass and data-dependent access afterwards.
It is the recommended choice for password hashing.

Hashes are usually stored in the string form

	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>

produced by HashEncoded and checked by VerifyEncoded.

*/
package argon
