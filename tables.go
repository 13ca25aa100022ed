package sizemap

// Compiled-in class tables. The trailing comment on each row is the
// tail waste of one span: (pages*pageSize) % size as a share of the span.

// 4KiB pages.
var smallSizeClasses = [smallNumClasses]SizeClassInfo{
	//  bytes pages batch
	{0, 0, 0},
	{8, 1, 32},    // 0.00%
	{16, 1, 32},   // 0.00%
	{24, 1, 32},   // 0.39%
	{32, 1, 32},   // 0.00%
	{40, 1, 32},   // 0.39%
	{48, 1, 32},   // 0.39%
	{56, 1, 32},   // 0.20%
	{64, 1, 32},   // 0.00%
	{72, 1, 32},   // 1.56%
	{80, 1, 32},   // 0.39%
	{88, 1, 32},   // 1.17%
	{96, 1, 32},   // 1.56%
	{104, 1, 32},  // 0.98%
	{112, 1, 32},  // 1.56%
	{120, 1, 32},  // 0.39%
	{128, 1, 32},  // 0.00%
	{160, 1, 32},  // 2.34%
	{192, 1, 32},  // 1.56%
	{224, 1, 32},  // 1.56%
	{256, 1, 32},  // 0.00%
	{312, 1, 32},  // 0.98%
	{352, 1, 32},  // 5.47%
	{408, 1, 32},  // 0.39%
	{448, 1, 32},  // 1.56%
	{512, 1, 32},  // 0.00%
	{576, 1, 32},  // 1.56%
	{640, 1, 32},  // 6.25%
	{768, 1, 32},  // 6.25%
	{896, 1, 32},  // 12.50%
	{1024, 1, 32}, // 0.00%
	{1152, 2, 32}, // 1.56%
	{1280, 1, 32}, // 6.25%
	{1536, 2, 32}, // 6.25%
	{1792, 1, 32}, // 12.50%
	{2048, 1, 32}, // 0.00%
	{2304, 3, 28}, // 6.25%
	{2688, 2, 24}, // 1.56%
	{3200, 4, 20}, // 2.34%
	{3584, 1, 18}, // 12.50%
	{4096, 1, 16}, // 0.00%
	{4736, 5, 13}, // 7.50%
	{5376, 3, 12}, // 12.50%
	{6144, 3, 10}, // 0.00%
	{7168, 2, 9},  // 12.50%
	{8192, 2, 8},  // 0.00%
}

// 8KiB pages.
var defaultSizeClasses = [defaultNumClasses]SizeClassInfo{
	//  bytes pages batch
	{0, 0, 0},
	{8, 1, 32},      // 0.00%
	{16, 1, 32},     // 0.00%
	{24, 1, 32},     // 0.10%
	{32, 1, 32},     // 0.00%
	{40, 1, 32},     // 0.39%
	{48, 1, 32},     // 0.39%
	{56, 1, 32},     // 0.20%
	{64, 1, 32},     // 0.00%
	{72, 1, 32},     // 0.68%
	{80, 1, 32},     // 0.39%
	{88, 1, 32},     // 0.10%
	{96, 1, 32},     // 0.39%
	{104, 1, 32},    // 0.98%
	{112, 1, 32},    // 0.20%
	{120, 1, 32},    // 0.39%
	{128, 1, 32},    // 0.00%
	{136, 1, 32},    // 0.39%
	{144, 1, 32},    // 1.56%
	{160, 1, 32},    // 0.39%
	{176, 1, 32},    // 1.17%
	{192, 1, 32},    // 1.56%
	{208, 1, 32},    // 0.98%
	{224, 1, 32},    // 1.56%
	{240, 1, 32},    // 0.39%
	{256, 1, 32},    // 0.00%
	{272, 1, 32},    // 0.39%
	{288, 1, 32},    // 1.56%
	{312, 1, 32},    // 0.98%
	{336, 1, 32},    // 1.56%
	{352, 1, 32},    // 1.17%
	{384, 1, 32},    // 1.56%
	{408, 1, 32},    // 0.39%
	{424, 1, 32},    // 1.66%
	{448, 1, 32},    // 1.56%
	{480, 1, 32},    // 0.39%
	{512, 1, 32},    // 0.00%
	{576, 1, 32},    // 1.56%
	{640, 1, 32},    // 6.25%
	{704, 1, 32},    // 5.47%
	{768, 1, 32},    // 6.25%
	{896, 1, 32},    // 1.56%
	{1024, 1, 32},   // 0.00%
	{1152, 1, 32},   // 1.56%
	{1280, 1, 32},   // 6.25%
	{1408, 2, 32},   // 5.47%
	{1536, 1, 32},   // 6.25%
	{1792, 1, 32},   // 12.50%
	{2048, 1, 32},   // 0.00%
	{2304, 2, 28},   // 1.56%
	{2688, 1, 24},   // 1.56%
	{3200, 2, 20},   // 2.34%
	{3456, 3, 18},   // 1.56%
	{3584, 1, 18},   // 12.50%
	{4096, 1, 16},   // 0.00%
	{4736, 3, 13},   // 3.65%
	{5376, 2, 12},   // 1.56%
	{6144, 3, 10},   // 0.00%
	{6528, 4, 10},   // 0.39%
	{7168, 1, 9},    // 12.50%
	{8192, 1, 8},    // 0.00%
	{9472, 5, 6},    // 7.50%
	{10240, 4, 6},   // 6.25%
	{12288, 3, 5},   // 0.00%
	{13568, 5, 4},   // 0.62%
	{14336, 2, 4},   // 12.50%
	{16384, 2, 4},   // 0.00%
	{20480, 5, 3},   // 0.00%
	{24576, 3, 2},   // 0.00%
	{28672, 4, 2},   // 12.50%
	{32768, 4, 2},   // 0.00%
	{40960, 5, 2},   // 0.00%
	{49152, 6, 2},   // 0.00%
	{57344, 7, 2},   // 0.00%
	{65536, 8, 2},   // 0.00%
	{73728, 9, 2},   // 0.00%
	{81920, 10, 2},  // 0.00%
	{98304, 12, 2},  // 0.00%
	{114688, 14, 2}, // 0.00%
	{131072, 16, 2}, // 0.00%
	{147456, 18, 2}, // 0.00%
	{163840, 20, 2}, // 0.00%
	{180224, 22, 2}, // 0.00%
	{204800, 25, 2}, // 0.00%
	{237568, 29, 2}, // 0.00%
	{262144, 32, 2}, // 0.00%
}

// 32KiB pages.
var largeSizeClasses = [largeNumClasses]SizeClassInfo{
	//  bytes pages batch
	{0, 0, 0},
	{8, 1, 32},     // 0.00%
	{16, 1, 32},    // 0.00%
	{24, 1, 32},    // 0.02%
	{32, 1, 32},    // 0.00%
	{40, 1, 32},    // 0.02%
	{48, 1, 32},    // 0.10%
	{56, 1, 32},    // 0.02%
	{64, 1, 32},    // 0.00%
	{72, 1, 32},    // 0.02%
	{80, 1, 32},    // 0.15%
	{88, 1, 32},    // 0.10%
	{96, 1, 32},    // 0.10%
	{104, 1, 32},   // 0.02%
	{112, 1, 32},   // 0.20%
	{120, 1, 32},   // 0.02%
	{128, 1, 32},   // 0.00%
	{136, 1, 32},   // 0.39%
	{144, 1, 32},   // 0.24%
	{160, 1, 32},   // 0.39%
	{176, 1, 32},   // 0.10%
	{192, 1, 32},   // 0.39%
	{208, 1, 32},   // 0.34%
	{224, 1, 32},   // 0.20%
	{240, 1, 32},   // 0.39%
	{256, 1, 32},   // 0.00%
	{272, 1, 32},   // 0.39%
	{288, 1, 32},   // 0.68%
	{312, 1, 32},   // 0.02%
	{336, 1, 32},   // 0.54%
	{352, 1, 32},   // 0.10%
	{384, 1, 32},   // 0.39%
	{408, 1, 32},   // 0.39%
	{424, 1, 32},   // 0.37%
	{448, 1, 32},   // 0.20%
	{480, 1, 32},   // 0.39%
	{512, 1, 32},   // 0.00%
	{576, 1, 32},   // 1.56%
	{640, 1, 32},   // 0.39%
	{704, 1, 32},   // 1.17%
	{768, 1, 32},   // 1.56%
	{896, 1, 32},   // 1.56%
	{1024, 1, 32},  // 0.00%
	{1152, 1, 32},  // 1.56%
	{1280, 1, 32},  // 2.34%
	{1408, 1, 32},  // 1.17%
	{1536, 1, 32},  // 1.56%
	{1792, 1, 32},  // 1.56%
	{2048, 1, 32},  // 0.00%
	{2304, 1, 28},  // 1.56%
	{2688, 1, 24},  // 1.56%
	{3200, 1, 20},  // 2.34%
	{4096, 1, 16},  // 0.00%
	{5376, 1, 12},  // 1.56%
	{6144, 1, 10},  // 6.25%
	{7168, 1, 9},   // 12.50%
	{8192, 1, 8},   // 0.00%
	{10240, 1, 6},  // 6.25%
	{12288, 2, 5},  // 6.25%
	{16384, 1, 4},  // 0.00%
	{20480, 2, 3},  // 6.25%
	{24576, 3, 2},  // 0.00%
	{28672, 1, 2},  // 12.50%
	{32768, 1, 2},  // 0.00%
	{40960, 4, 2},  // 6.25%
	{49152, 3, 2},  // 0.00%
	{57344, 2, 2},  // 12.50%
	{65536, 2, 2},  // 0.00%
	{73728, 5, 2},  // 10.00%
	{81920, 5, 2},  // 0.00%
	{98304, 3, 2},  // 0.00%
	{114688, 4, 2}, // 12.50%
	{131072, 4, 2}, // 0.00%
	{147456, 5, 2}, // 10.00%
	{163840, 5, 2}, // 0.00%
	{204800, 7, 2}, // 10.71%
	{237568, 8, 2}, // 9.38%
	{262144, 8, 2}, // 0.00%
}

// 256KiB pages.
var hugeSizeClasses = [hugeNumClasses]SizeClassInfo{
	//  bytes pages batch
	{0, 0, 0},
	{8, 1, 32},     // 0.00%
	{16, 1, 32},    // 0.00%
	{24, 1, 32},    // 0.01%
	{32, 1, 32},    // 0.00%
	{40, 1, 32},    // 0.01%
	{48, 1, 32},    // 0.01%
	{56, 1, 32},    // 0.00%
	{64, 1, 32},    // 0.00%
	{72, 1, 32},    // 0.02%
	{80, 1, 32},    // 0.02%
	{88, 1, 32},    // 0.03%
	{96, 1, 32},    // 0.02%
	{104, 1, 32},   // 0.02%
	{112, 1, 32},   // 0.02%
	{120, 1, 32},   // 0.02%
	{128, 1, 32},   // 0.00%
	{136, 1, 32},   // 0.03%
	{144, 1, 32},   // 0.02%
	{160, 1, 32},   // 0.02%
	{176, 1, 32},   // 0.03%
	{192, 1, 32},   // 0.02%
	{208, 1, 32},   // 0.02%
	{224, 1, 32},   // 0.02%
	{240, 1, 32},   // 0.02%
	{256, 1, 32},   // 0.00%
	{272, 1, 32},   // 0.08%
	{288, 1, 32},   // 0.02%
	{312, 1, 32},   // 0.02%
	{336, 1, 32},   // 0.02%
	{352, 1, 32},   // 0.10%
	{384, 1, 32},   // 0.10%
	{408, 1, 32},   // 0.08%
	{424, 1, 32},   // 0.04%
	{448, 1, 32},   // 0.02%
	{480, 1, 32},   // 0.02%
	{512, 1, 32},   // 0.00%
	{576, 1, 32},   // 0.02%
	{640, 1, 32},   // 0.15%
	{704, 1, 32},   // 0.10%
	{768, 1, 32},   // 0.10%
	{896, 1, 32},   // 0.20%
	{1024, 1, 32},  // 0.00%
	{1152, 1, 32},  // 0.24%
	{1280, 1, 32},  // 0.39%
	{1408, 1, 32},  // 0.10%
	{1536, 1, 32},  // 0.39%
	{1664, 1, 32},  // 0.34%
	{1792, 1, 32},  // 0.20%
	{2048, 1, 32},  // 0.00%
	{2304, 1, 28},  // 0.68%
	{2688, 1, 24},  // 0.54%
	{3072, 1, 21},  // 0.39%
	{3200, 1, 20},  // 1.12%
	{3456, 1, 18},  // 1.12%
	{3584, 1, 18},  // 0.20%
	{4096, 1, 16},  // 0.00%
	{4736, 1, 13},  // 0.63%
	{5120, 1, 12},  // 0.39%
	{5376, 1, 12},  // 1.56%
	{6144, 1, 10},  // 1.56%
	{6528, 1, 10},  // 0.39%
	{7168, 1, 9},   // 1.56%
	{8192, 1, 8},   // 0.00%
	{9472, 1, 6},   // 2.44%
	{10240, 1, 6},  // 2.34%
	{12288, 1, 5},  // 1.56%
	{13568, 1, 4},  // 1.66%
	{14336, 1, 4},  // 1.56%
	{16384, 1, 4},  // 0.00%
	{20480, 1, 3},  // 6.25%
	{24576, 1, 2},  // 6.25%
	{28672, 1, 2},  // 1.56%
	{32768, 1, 2},  // 0.00%
	{40960, 1, 2},  // 6.25%
	{49152, 1, 2},  // 6.25%
	{57344, 1, 2},  // 12.50%
	{65536, 1, 2},  // 0.00%
	{73728, 2, 2},  // 1.56%
	{81920, 1, 2},  // 6.25%
	{98304, 2, 2},  // 6.25%
	{114688, 1, 2}, // 12.50%
	{131072, 1, 2}, // 0.00%
	{147456, 3, 2}, // 6.25%
	{163840, 2, 2}, // 6.25%
	{180224, 3, 2}, // 8.33%
	{204800, 4, 2}, // 2.34%
	{237568, 1, 2}, // 9.38%
	{262144, 1, 2}, // 0.00%
}

// DefaultTable returns a copy of the compiled-in table of p, or nil when p
// is unknown.
func DefaultTable(p Profile) Table {
	switch p {
	case ProfileSmall:
		return Table(smallSizeClasses[:]).Clone()
	case ProfileDefault:
		return Table(defaultSizeClasses[:]).Clone()
	case ProfileLarge:
		return Table(largeSizeClasses[:]).Clone()
	case Profile256K:
		return Table(hugeSizeClasses[:]).Clone()
	}
	return nil
}
