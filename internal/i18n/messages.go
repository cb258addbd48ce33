package i18n

var messages = map[string]map[string]string{
	"en": {
		"bad_request":       "The request body could not be parsed.",
		"empty_prompt":      "Describe a scene first, then try again.",
		"empty_image":       "Choose a photo first, then try again.",
		"invalid_image":     "The uploaded image data could not be decoded.",
		"image_too_large":   "The uploaded image is too large.",
		"unsupported_style": "That style is not available.",
		"blocked":           "No image came back. The request may have been declined by the model's safety filters, so try rephrasing your scene.",
		"empty_description": "The photo could not be described, so nothing was generated. Try a clearer photo.",
		"upstream_error":    "The image service failed. Try again in a moment.",
		"busy":              "Too many images are being generated right now. Try again in a moment.",
		"rate_limited":      "Too many requests. Slow down a little.",
		"internal":          "Something went wrong on our side.",
	},
	"id": {
		"bad_request":       "Isi permintaan tidak dapat dibaca.",
		"empty_prompt":      "Tuliskan dulu deskripsi suasananya, lalu coba lagi.",
		"empty_image":       "Pilih dulu fotonya, lalu coba lagi.",
		"invalid_image":     "Data gambar yang diunggah tidak dapat dibaca.",
		"image_too_large":   "Ukuran gambar terlalu besar.",
		"unsupported_style": "Gaya tersebut tidak tersedia.",
		"blocked":           "Tidak ada gambar yang dihasilkan. Permintaan mungkin ditolak filter keamanan model, coba ubah deskripsinya.",
		"empty_description": "Foto tidak dapat dideskripsikan, jadi tidak ada gambar yang dibuat. Coba foto yang lebih jelas.",
		"upstream_error":    "Layanan gambar sedang bermasalah. Coba lagi sebentar lagi.",
		"busy":              "Terlalu banyak gambar sedang dibuat. Coba lagi sebentar lagi.",
		"rate_limited":      "Terlalu banyak permintaan. Pelan-pelan dulu ya.",
		"internal":          "Terjadi kesalahan di sisi kami.",
	},
}

// T returns the catalog message for the key in the given locale. Unknown
// locales fall back to English and unknown keys fall back to the key itself,
// so a missing translation never blanks an error message.
func T(locale, key string) string {
	if m, ok := messages[locale]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages["en"][key]; ok {
		return s
	}
	return key
}
