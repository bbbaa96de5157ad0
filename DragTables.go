package ballistics

//g1Table is the standard G1 (flat-base) reference drag table, Mach vs. Cd.
var g1Table = []DataPoint{
	{A: 0.00, B: 0.2629}, {A: 0.05, B: 0.2558}, {A: 0.10, B: 0.2487},
	{A: 0.15, B: 0.2413}, {A: 0.20, B: 0.2344}, {A: 0.25, B: 0.2278},
	{A: 0.30, B: 0.2214}, {A: 0.35, B: 0.2155}, {A: 0.40, B: 0.2104},
	{A: 0.45, B: 0.2061}, {A: 0.50, B: 0.2032}, {A: 0.55, B: 0.2020},
	{A: 0.60, B: 0.2034}, {A: 0.70, B: 0.2165}, {A: 0.725, B: 0.2230},
	{A: 0.75, B: 0.2313}, {A: 0.775, B: 0.2417}, {A: 0.80, B: 0.2546},
	{A: 0.825, B: 0.2706}, {A: 0.85, B: 0.2901}, {A: 0.875, B: 0.3136},
	{A: 0.90, B: 0.3415}, {A: 0.925, B: 0.3734}, {A: 0.95, B: 0.4084},
	{A: 0.975, B: 0.4448}, {A: 1.0, B: 0.4805}, {A: 1.025, B: 0.5136},
	{A: 1.05, B: 0.5427}, {A: 1.075, B: 0.5677}, {A: 1.10, B: 0.5883},
	{A: 1.125, B: 0.6053}, {A: 1.15, B: 0.6191}, {A: 1.20, B: 0.6393},
	{A: 1.25, B: 0.6518}, {A: 1.30, B: 0.6589}, {A: 1.35, B: 0.6621},
	{A: 1.40, B: 0.6625}, {A: 1.45, B: 0.6607}, {A: 1.50, B: 0.6573},
	{A: 1.55, B: 0.6528}, {A: 1.60, B: 0.6474}, {A: 1.65, B: 0.6413},
	{A: 1.70, B: 0.6347}, {A: 1.75, B: 0.6280}, {A: 1.80, B: 0.6210},
	{A: 1.85, B: 0.6141}, {A: 1.90, B: 0.6072}, {A: 1.95, B: 0.6003},
	{A: 2.00, B: 0.5934}, {A: 2.05, B: 0.5867}, {A: 2.10, B: 0.5804},
	{A: 2.15, B: 0.5743}, {A: 2.20, B: 0.5685}, {A: 2.25, B: 0.5630},
	{A: 2.30, B: 0.5577}, {A: 2.35, B: 0.5527}, {A: 2.40, B: 0.5481},
	{A: 2.45, B: 0.5438}, {A: 2.50, B: 0.5397}, {A: 2.60, B: 0.5325},
	{A: 2.70, B: 0.5264}, {A: 2.80, B: 0.5211}, {A: 2.90, B: 0.5168},
	{A: 3.00, B: 0.5133}, {A: 3.10, B: 0.5105}, {A: 3.20, B: 0.5084},
	{A: 3.30, B: 0.5067}, {A: 3.40, B: 0.5054}, {A: 3.50, B: 0.5040},
	{A: 3.60, B: 0.5030}, {A: 3.70, B: 0.5022}, {A: 3.80, B: 0.5016},
	{A: 3.90, B: 0.5010}, {A: 4.00, B: 0.5006}, {A: 4.20, B: 0.4998},
	{A: 4.40, B: 0.4995}, {A: 4.60, B: 0.4992}, {A: 4.80, B: 0.4990},
	{A: 5.00, B: 0.4988},
}

var g1Curve = calculateCurve(g1Table)

//g7Table is the standard G7 (boat-tail, secant-ogive) reference drag table, Mach vs. Cd.
var g7Table = []DataPoint{
	{A: 0.00, B: 0.1198}, {A: 0.05, B: 0.1197}, {A: 0.10, B: 0.1196},
	{A: 0.15, B: 0.1194}, {A: 0.20, B: 0.1193}, {A: 0.25, B: 0.1194},
	{A: 0.30, B: 0.1194}, {A: 0.35, B: 0.1194}, {A: 0.40, B: 0.1193},
	{A: 0.45, B: 0.1193}, {A: 0.50, B: 0.1194}, {A: 0.55, B: 0.1193},
	{A: 0.60, B: 0.1194}, {A: 0.65, B: 0.1197}, {A: 0.70, B: 0.1202},
	{A: 0.725, B: 0.1207}, {A: 0.75, B: 0.1215}, {A: 0.775, B: 0.1226},
	{A: 0.80, B: 0.1242}, {A: 0.825, B: 0.1266}, {A: 0.85, B: 0.1306},
	{A: 0.875, B: 0.1368}, {A: 0.90, B: 0.1464}, {A: 0.925, B: 0.1660},
	{A: 0.95, B: 0.2054}, {A: 0.975, B: 0.2993}, {A: 1.0, B: 0.3803},
	{A: 1.025, B: 0.4015}, {A: 1.05, B: 0.4043}, {A: 1.075, B: 0.4034},
	{A: 1.10, B: 0.4014}, {A: 1.125, B: 0.3987}, {A: 1.15, B: 0.3955},
	{A: 1.20, B: 0.3884}, {A: 1.25, B: 0.3810}, {A: 1.30, B: 0.3732},
	{A: 1.35, B: 0.3657}, {A: 1.40, B: 0.3580}, {A: 1.50, B: 0.3440},
	{A: 1.55, B: 0.3376}, {A: 1.60, B: 0.3315}, {A: 1.65, B: 0.3260},
	{A: 1.70, B: 0.3209}, {A: 1.75, B: 0.3160}, {A: 1.80, B: 0.3117},
	{A: 1.85, B: 0.3078}, {A: 1.90, B: 0.3042}, {A: 1.95, B: 0.3010},
	{A: 2.00, B: 0.2980}, {A: 2.05, B: 0.2951}, {A: 2.10, B: 0.2922},
	{A: 2.15, B: 0.2892}, {A: 2.20, B: 0.2864}, {A: 2.25, B: 0.2835},
	{A: 2.30, B: 0.2807}, {A: 2.35, B: 0.2779}, {A: 2.40, B: 0.2752},
	{A: 2.45, B: 0.2725}, {A: 2.50, B: 0.2697}, {A: 2.55, B: 0.2670},
	{A: 2.60, B: 0.2643}, {A: 2.65, B: 0.2615}, {A: 2.70, B: 0.2588},
	{A: 2.75, B: 0.2561}, {A: 2.80, B: 0.2533}, {A: 2.85, B: 0.2506},
	{A: 2.90, B: 0.2479}, {A: 2.95, B: 0.2451}, {A: 3.00, B: 0.2424},
	{A: 3.10, B: 0.2368}, {A: 3.20, B: 0.2313}, {A: 3.30, B: 0.2258},
	{A: 3.40, B: 0.2205}, {A: 3.50, B: 0.2154}, {A: 3.60, B: 0.2106},
	{A: 3.70, B: 0.2060}, {A: 3.80, B: 0.2017}, {A: 3.90, B: 0.1975},
	{A: 4.00, B: 0.1935}, {A: 4.20, B: 0.1861}, {A: 4.40, B: 0.1793},
	{A: 4.60, B: 0.1730}, {A: 4.80, B: 0.1672}, {A: 5.00, B: 0.1618},
}

var g7Curve = calculateCurve(g7Table)
