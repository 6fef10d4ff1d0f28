// Package zipenc rewrites ZIP archives whose filenames are stored in a legacy
// encoding, such as the Shift JIS names written by Japanese Windows tools,
// so that the names are UTF-8.
//
// Payloads are never decompressed or recompressed. The archive is walked
// once, front to back, and each record is rewritten as it is read:
//   - Local file headers get the UTF-8 name and its new length; the payload
//     that follows is copied byte for byte.
//   - Central directory entries get the new name and the output offset of
//     their local header.
//   - The end of central directory record gets the new directory size and
//     offset.
//
// CRCs, sizes, timestamps, extra fields and comments are copied unchanged.
// ZIP64, spanned and signed archives are rejected with ErrUnsupportedRecord.
//
// # Quick Start
//
//	report, err := zipenc.TranscodeFile(ctx, "sjis.zip", "utf8.zip")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.LocalHeaders, report.OutputDigest)
//
// Use [WithEncodingName] for legacy encodings other than Shift JIS and
// [WithUTF8Flag] to mark rewritten names as UTF-8 for readers that honor
// general purpose bit 11.
package zipenc
