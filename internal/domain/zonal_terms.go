package domain

// zonalTideTerms is the table of 62 zonal tidal terms of the IERS Conventions
// (2010), table 8.1. Columns are the multipliers of l, l', F, D and Ω followed
// by the UT1 (sin, cos) in 1e-4 s, LOD (cos, sin) in 1e-5 s and ω (cos, sin)
// in 1e-14 rad/s coefficients. Row order is significant for the summation.
var zonalTideTerms = [zonalTermCount]ZonalTideTerm{
	{[5]int{1, 0, 2, 2, 2}, -0.0235, 0, 0.2617, 0, -0.2209, 0},
	{[5]int{2, 0, 2, 0, 1}, -0.0404, 0, 0.3706, 0, -0.3128, 0},
	{[5]int{2, 0, 2, 0, 2}, -0.0987, 0, 0.9041, 0, -0.7630, 0},
	{[5]int{0, 0, 2, 2, 1}, -0.0508, 0, 0.4499, 0, -0.3797, 0},
	{[5]int{0, 0, 2, 2, 2}, -0.1231, 0, 1.0904, 0, -0.9203, 0},
	{[5]int{1, 0, 2, 0, 0}, -0.0385, 0, 0.2659, 0, -0.2244, 0},
	{[5]int{1, 0, 2, 0, 1}, -0.4108, 0, 2.8298, 0, -2.3884, 0},
	{[5]int{1, 0, 2, 0, 2}, -0.9926, 0, 6.8291, 0, -5.7637, 0},
	{[5]int{3, 0, 0, 0, 0}, -0.0179, 0, 0.1221, 0, -0.1031, 0},
	{[5]int{-1, 0, 2, 2, 1}, -0.0818, 0, 0.5384, 0, -0.4544, 0},
	{[5]int{-1, 0, 2, 2, 2}, -0.1974, 0, 1.2978, 0, -1.0953, 0},
	{[5]int{1, 0, 0, 2, 0}, -0.0761, 0, 0.4976, 0, -0.4200, 0},
	{[5]int{2, 0, 2, -2, 2}, 0.0216, 0, -0.1060, 0, 0.0895, 0},
	{[5]int{0, 1, 2, 0, 2}, 0.0254, 0, -0.1211, 0, 0.1022, 0},
	{[5]int{0, 0, 2, 0, 0}, -0.2989, 0, 1.3804, 0, -1.1650, 0},
	{[5]int{0, 0, 2, 0, 1}, -3.1873, 0.2010, 14.6890, 0.9266, -12.3974, -0.7820},
	{[5]int{0, 0, 2, 0, 2}, -7.8468, 0.5320, 36.0910, 2.4469, -30.4606, -2.0652},
	{[5]int{2, 0, 0, 0, -1}, 0.0216, 0, -0.0988, 0, 0.0834, 0},
	{[5]int{2, 0, 0, 0, 0}, -0.3384, 0, 1.5433, 0, -1.3025, 0},
	{[5]int{2, 0, 0, 0, 1}, 0.0179, 0, -0.0813, 0, 0.0686, 0},
	{[5]int{0, -1, 2, 0, 2}, -0.0244, 0, 0.1082, 0, -0.0913, 0},
	{[5]int{0, 0, 0, 2, -1}, 0.0470, 0, -0.2004, 0, 0.1692, 0},
	{[5]int{0, 0, 0, 2, 0}, -0.7341, 0, 3.1240, 0, -2.6367, 0},
	{[5]int{0, 0, 0, 2, 1}, -0.0526, 0, 0.2235, 0, -0.1886, 0},
	{[5]int{0, -1, 0, 2, 0}, -0.0508, 0, 0.2072, 0, -0.1749, 0},
	{[5]int{1, 0, 2, -2, 1}, 0.0498, 0, -0.1312, 0, 0.1107, 0},
	{[5]int{1, 0, 2, -2, 2}, 0.1006, 0, -0.2640, 0, 0.2228, 0},
	{[5]int{1, 1, 0, 0, 0}, 0.0395, 0, -0.0967, 0, 0.0817, 0},
	{[5]int{-1, 0, 2, 0, 0}, 0.0470, 0, -0.1099, 0, 0.0927, 0},
	{[5]int{-1, 0, 2, 0, 1}, 0.1767, 0, -0.4115, 0, 0.3473, 0},
	{[5]int{-1, 0, 2, 0, 2}, 0.4352, 0, -1.0093, 0, 0.8519, 0},
	{[5]int{1, 0, 0, 0, -1}, 0.5339, 0, -1.2224, 0, 1.0317, 0},
	{[5]int{1, 0, 0, 0, 0}, -8.4046, 0.2500, 19.1647, 0.5701, -16.1749, -0.4811},
	{[5]int{1, 0, 0, 0, 1}, 0.5443, 0, -1.2360, 0, 1.0432, 0},
	{[5]int{0, 0, 0, 1, 0}, 0.0470, 0, -0.1000, 0, 0.0844, 0},
	{[5]int{1, -1, 0, 0, 0}, -0.0555, 0, 0.1169, 0, -0.0987, 0},
	{[5]int{-1, 0, 0, 2, -1}, 0.1175, 0, -0.2332, 0, 0.1968, 0},
	{[5]int{-1, 0, 0, 2, 0}, -1.8236, 0, 3.6018, 0, -3.0399, 0},
	{[5]int{-1, 0, 0, 2, 1}, 0.1316, 0, -0.2587, 0, 0.2183, 0},
	{[5]int{1, 0, -2, 2, -1}, 0.0179, 0, -0.0344, 0, 0.0290, 0},
	{[5]int{-1, -1, 0, 2, 0}, -0.0855, 0, 0.1542, 0, -0.1302, 0},
	{[5]int{0, 2, 2, -2, 2}, -0.0573, 0, 0.0395, 0, -0.0333, 0},
	{[5]int{0, 1, 2, -2, 1}, 0.0329, 0, -0.0173, 0, 0.0146, 0},
	{[5]int{0, 1, 2, -2, 2}, -1.8847, 0, 0.9726, 0, -0.8209, 0},
	{[5]int{0, 0, 2, -2, 0}, 0.2510, 0, -0.0910, 0, 0.0768, 0},
	{[5]int{0, 0, 2, -2, 1}, 1.1703, 0, -0.4135, 0, 0.3490, 0},
	{[5]int{0, 0, 2, -2, 2}, -49.7174, 0.4330, 17.1056, 0.1490, -14.4370, -0.1257},
	{[5]int{0, 2, 0, 0, 0}, -0.1936, 0, 0.0666, 0, -0.0562, 0},
	{[5]int{2, 0, 0, -2, -1}, 0.0489, 0, -0.0154, 0, 0.0130, 0},
	{[5]int{2, 0, 0, -2, 0}, -0.5471, 0, 0.1669, 0, -0.1409, 0},
	{[5]int{2, 0, 0, -2, 1}, 0.0367, 0, -0.0108, 0, 0.0092, 0},
	{[5]int{0, -1, 2, -2, 1}, -0.0451, 0, 0.0082, 0, -0.0069, 0},
	{[5]int{0, 1, 0, 0, -1}, 0.0921, 0, -0.0167, 0, 0.0141, 0},
	{[5]int{0, -1, 2, -2, 2}, 0.8281, 0, -0.1425, 0, 0.1202, 0},
	{[5]int{0, 1, 0, 0, 0}, -15.8887, 0.1530, 2.7332, 0.0263, -2.3068, -0.0222},
	{[5]int{0, 1, 0, 0, 1}, -0.1382, 0, 0.0225, 0, -0.0190, 0},
	{[5]int{1, 0, 0, -1, 0}, 0.0348, 0, -0.0053, 0, 0.0045, 0},
	{[5]int{2, 0, -2, 0, 0}, -0.1372, 0, -0.0079, 0, 0.0066, 0},
	{[5]int{-2, 0, 2, 0, 1}, 0.4211, 0, -0.0203, 0, 0.0171, 0},
	{[5]int{-1, 1, 0, 1, 0}, -0.0404, 0, 0.0008, 0, -0.0007, 0},
	{[5]int{0, 0, 0, 0, 2}, 7.8998, 0, 0.1460, 0, -0.1232, 0},
	{[5]int{0, 0, 0, 0, 1}, -1617.2681, 0, -14.9471, 0, 12.6153, 0},
}
