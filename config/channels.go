package config

// Channel describes a single entry in the channel directory. The directory is
// static data: it is not mutated at runtime.
type Channel struct {
	LCN         int    `json:"lcn"`
	Name        string `json:"name"`
	Stream      string `json:"stream"`
	IsAudioOnly bool   `json:"isAudioOnly"`
}

// Channels returns the full channel directory keyed by LCN. Relay channels
// point at the stream proxy instead of their upstream URL because the player
// cannot fetch those upstreams directly (CORS).
func Channels() map[int]Channel {
	return map[int]Channel{
		// TV channels
		2:  {LCN: 2, Name: "ABC TV", Stream: "https://c.mjh.nz/abc-nsw.m3u8"},
		20: {LCN: 20, Name: "ABC TV HD", Stream: "https://c.mjh.nz/abc-nsw.m3u8"},
		21: {LCN: 21, Name: "ABC News", Stream: "https://c.mjh.nz/abc-news.m3u8"},
		22: {LCN: 22, Name: "ABC Kids/Family", Stream: "https://c.mjh.nz/abc-kids.m3u8"},
		23: {LCN: 23, Name: "ABC Entertains", Stream: "https://c.mjh.nz/abc-me.m3u8"},
		24: {LCN: 24, Name: "ABC News", Stream: "https://c.mjh.nz/abc-news.m3u8"},
		3:  {LCN: 3, Name: "SBS One", Stream: "https://i.mjh.nz/.r/sbs-sbst.m3u8"},
		30: {LCN: 30, Name: "SBS One HD", Stream: "https://i.mjh.nz/.r/sbs-sbst.m3u8"},
		31: {LCN: 31, Name: "SBS Viceland HD", Stream: "https://i.mjh.nz/.r/sbs-2syd.m3u8"},
		32: {LCN: 32, Name: "SBS World Movies", Stream: "https://i.mjh.nz/.r/sbs-4syd.m3u8"},
		33: {LCN: 33, Name: "SBS Food", Stream: "https://i.mjh.nz/.r/sbs-3syd.m3u8"},
		34: {LCN: 34, Name: "NITV HD", Stream: "https://i.mjh.nz/.r/sbs-5nsw.m3u8"},
		35: {LCN: 35, Name: "SBS WorldWatch", Stream: "https://i.mjh.nz/.r/sbs-6nat.m3u8"},
		36: {LCN: 36, Name: "NITV", Stream: "https://i.mjh.nz/.r/sbs-5nsw.m3u8"},
		5:  {LCN: 5, Name: "10 HD Northern NSW", Stream: "https://i.mjh.nz/.r/10-nsw.m3u8"},
		50: {LCN: 50, Name: "10 HD", Stream: "https://i.mjh.nz/.r/10-nsw.m3u8"},
		51: {LCN: 51, Name: "10 Drama", Stream: "https://i.mjh.nz/.r/10bold-nsw.m3u8"},
		52: {LCN: 52, Name: "10 Comedy", Stream: "https://i.mjh.nz/.r/10peach-nsw.m3u8"},
		53: {LCN: 53, Name: "Sky News Regional", Stream: "https://i.mjh.nz/.r/sky-news-now.m3u8"},
		54: {LCN: 54, Name: "Gecko", Stream: "https://i.mjh.nz/.r/10-geckotv.m3u8"},
		56: {LCN: 56, Name: "You TV", Stream: "https://i.mjh.nz/.r/10-youtv.m3u8"},
		6:  {LCN: 6, Name: "7 HD Seven", Stream: "https://i.mjh.nz/.r/seven-syd.m3u8"},
		60: {LCN: 60, Name: "7 HD", Stream: "https://i.mjh.nz/.r/seven-syd.m3u8"},
		62: {LCN: 62, Name: "7two HD", Stream: "https://i.mjh.nz/.r/7two-syd.m3u8"},
		64: {LCN: 64, Name: "7mate HD", Stream: "https://i.mjh.nz/.r/7mate-syd.m3u8"},
		65: {LCN: 65, Name: "7Bravo", Stream: "https://i.mjh.nz/.r/7bravo-fast.m3u8"},
		66: {LCN: 66, Name: "7flix", Stream: "https://i.mjh.nz/.r/7flix-syd.m3u8"},
		67: {LCN: 67, Name: "TVSN", Stream: "https://i.mjh.nz/.r/tvsn-fast.m3u8"},
		68: {LCN: 68, Name: "Racing.com", Stream: "https://i.mjh.nz/.r/racing-fast.m3u8"},
		8:  {LCN: 8, Name: "Nine", Stream: "https://i.mjh.nz/.r/channel-9-nsw.m3u8"},
		80: {LCN: 80, Name: "9HD", Stream: "https://i.mjh.nz/.r/channel-9-nsw.m3u8"},
		81: {LCN: 81, Name: "Nine far north coast", Stream: "https://i.mjh.nz/.r/channel-9-nsw.m3u8"},
		82: {LCN: 82, Name: "9Gem", Stream: "https://i.mjh.nz/.r/gem-nsw.m3u8"},
		83: {LCN: 83, Name: "9Go!", Stream: "https://i.mjh.nz/.r/go-nsw.m3u8"},
		84: {LCN: 84, Name: "9Life", Stream: "https://i.mjh.nz/.r/life-nsw.m3u8"},
		85: {LCN: 85, Name: "9Gem HD", Stream: "https://i.mjh.nz/.r/gem-nsw.m3u8"},
		88: {LCN: 88, Name: "9Go! HD", Stream: "https://i.mjh.nz/.r/go-nsw.m3u8"},

		// Audio channels: ABC streams go through the proxy (CORS), SBS direct
		25:  {LCN: 25, Name: "ABC Radio Sydney", Stream: "/api/stream-proxy/25", IsAudioOnly: true},
		26:  {LCN: 26, Name: "Radio National", Stream: "/api/stream-proxy/26", IsAudioOnly: true},
		27:  {LCN: 27, Name: "ABC Classic", Stream: "/api/stream-proxy/27", IsAudioOnly: true},
		28:  {LCN: 28, Name: "Triple J", Stream: "/api/stream-proxy/28", IsAudioOnly: true},
		29:  {LCN: 29, Name: "Triple J Unearthed", Stream: "/api/stream-proxy/29", IsAudioOnly: true},
		200: {LCN: 200, Name: "Double J", Stream: "/api/stream-proxy/200", IsAudioOnly: true},
		201: {LCN: 201, Name: "ABC Jazz", Stream: "/api/stream-proxy/201", IsAudioOnly: true},
		202: {LCN: 202, Name: "ABC Kids Listen", Stream: "/api/stream-proxy/202", IsAudioOnly: true},
		203: {LCN: 203, Name: "ABC Country", Stream: "/api/stream-proxy/203", IsAudioOnly: true},
		204: {LCN: 204, Name: "ABC NewsRadio", Stream: "/api/stream-proxy/204", IsAudioOnly: true},
		301: {LCN: 301, Name: "SBS Radio 1", Stream: "https://i.mjh.nz/.r/sbs-sbs-radio-1.m3u8", IsAudioOnly: true},
		302: {LCN: 302, Name: "SBS Radio 2", Stream: "https://i.mjh.nz/.r/sbs-sbs-radio-2.m3u8", IsAudioOnly: true},
		303: {LCN: 303, Name: "SBS Radio 3", Stream: "https://i.mjh.nz/.r/sbs-sbs-radio-3.m3u8", IsAudioOnly: true},
		304: {LCN: 304, Name: "SBS Arabic", Stream: "https://i.mjh.nz/.r/sbs-sbs-pop-araby.m3u8", IsAudioOnly: true},
		305: {LCN: 305, Name: "SBS South Asian", Stream: "https://i.mjh.nz/.r/sbs-sbs-pop-desi.m3u8", IsAudioOnly: true},
		306: {LCN: 306, Name: "SBS Chill", Stream: "https://i.mjh.nz/.r/sbs-sbs-chill.m3u8", IsAudioOnly: true},
		307: {LCN: 307, Name: "SBS PopAsia", Stream: "https://i.mjh.nz/.r/sbs-sbs-pop-asia.m3u8", IsAudioOnly: true},
	}
}

// RelayUpstreams maps relay channel LCNs to the upstream audio URL the proxy
// fetches on the player's behalf.
func RelayUpstreams() map[int]string {
	return map[int]string{
		25:  "https://i.mjh.nz/.r/radio-ih-7135", // ABC Radio Sydney
		26:  "https://i.mjh.nz/.r/radio-ih-7111", // Radio National
		27:  "https://i.mjh.nz/.r/radio-ih-7118", // ABC Classic
		28:  "https://i.mjh.nz/.r/radio-ih-7115", // Triple J
		29:  "https://i.mjh.nz/.r/radio-ih-7116", // Triple J Unearthed
		200: "https://i.mjh.nz/.r/radio-ih-7090", // Double J
		201: "https://i.mjh.nz/.r/radio-ih-7124", // ABC Jazz
		202: "https://i.mjh.nz/.r/radio-ih-7967", // ABC Kids Listen
		203: "https://i.mjh.nz/.r/radio-ih-7125", // ABC Country
		204: "https://i.mjh.nz/.r/radio-ih-7110", // ABC NewsRadio
	}
}
