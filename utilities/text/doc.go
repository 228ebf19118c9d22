// Package text implements the character-level layer of the Pinto format: the
// 64-symbol digit alphabet, the variable-length integer encoding built on it,
// and [Buffer], a growable append-only character buffer with a read cursor.
//
// Digits are `0-9`, `a-z`, `A-Z`, `:` and `;`, in that order, giving the values
// 0 to 63. Integers are written as:
//
//	         0 -       63   V
//	        64 -      895   pV        p is one of # $ % & ' ( ) * + , - . /
//	       896 -     4095   <VV
//	      4096 -   262143   =VVV
//	    262144 - 16777215   >VVVV
//
// In the two-character form the prefix selects a block of 64 values: '#' is
// 64-127, '$' is 128-191 and so on up to '/' for 832-895. The longer forms are
// plain big-endian base 64 after the marker.
//
// A Buffer only stores characters from '#' to 'z', excluding `[`, `\`, `]`,
// `_` and the backquote. Anything else handed to it is dropped without an
// error, so encodings can be wrapped, indented or otherwise padded with
// whitespace and still decode. A buffer never grows beyond [MaxLength]
// characters.
package text
