// Package preset reads and writes layer stack documents.
//
// A document is a versioned list of layers with an optional session block
// holding the text and request settings it was saved with:
//
//	{
//	  "version": 1,
//	  "layers": [
//	    {"id": "layer-1", "type": "gradientFill", "name": "Gradient Fill",
//	     "enabled": true, "params": {"stops": [...], "angleDeg": 90}}
//	  ],
//	  "session": {"text": "Hello", "fontSize": 143}
//	}
//
// Documents are encoded as JSON, TOML or YAML. [CodecFor] picks the codec
// from a file extension.
//
// Importing is lenient. Entries without a string id and type are dropped,
// numbers may be written as strings, unknown layer types are kept as
// [textfx.UnknownParams], and old three-color gradients are migrated to
// stop lists. Every imported stack has exactly one enabled base fill at a
// known position: the first gradient fill, else the first solid fill, else
// a new gradient fill inserted at the top.
package preset
