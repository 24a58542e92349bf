// Package codec is the per-format decode/encode collaborator. Each supported
// format (PNG, JPEG, GIF, BMP) is one variant of the Codec interface; a
// registry selects the variant by detected format tag, MIME type, or file
// extension.
//
// Formats with an alpha channel are written without blending so transparent
// letterbox padding survives the round trip. JPEG has no alpha channel and
// flattens transparency.
package codec
