/*
Copyright © 2020 the GridClip authors.
This file is part of GridClip.

GridClip is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GridClip is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GridClip.  If not, see <http://www.gnu.org/licenses/>.*/

package gridclip

import "github.com/ctessum/geom"

// Test polygons in RT90 2.5 gon V. The two share part of their boundary.

var testRing1 = []geom.Point{
	{X: 1683206.375, Y: 7134169.0},
	{X: 1683198.0, Y: 7134157.5},
	{X: 1683193.875, Y: 7134149.5},
	{X: 1683188.875, Y: 7134133.5},
	{X: 1683189.625, Y: 7134125.5},
	{X: 1683193.625, Y: 7134117.5},
	{X: 1683206.5, Y: 7134101.0},
	{X: 1683200.625, Y: 7134077.0},
	{X: 1683200.5, Y: 7134068.5},
	{X: 1683223.125, Y: 7134023.5},
	{X: 1683229.5, Y: 7134015.0},
	{X: 1683245.25, Y: 7133982.5},
	{X: 1683255.125, Y: 7133958.0},
	{X: 1683263.0, Y: 7133950.0},
	{X: 1683279.0, Y: 7133938.5},
	{X: 1683311.125, Y: 7133923.0},
	{X: 1683351.25, Y: 7133910.5},
	{X: 1683367.375, Y: 7133903.0},
	{X: 1683399.375, Y: 7133881.5},
	{X: 1683424.5, Y: 7133840.5},
	{X: 1683438.0, Y: 7133824.0},
	{X: 1683446.0, Y: 7133818.5},
	{X: 1683454.0, Y: 7133815.0},
	{X: 1683470.125, Y: 7133811.5},
	{X: 1683486.25, Y: 7133807.0},
	{X: 1683518.375, Y: 7133795.5},
	{X: 1683529.5, Y: 7133795.0},
	{X: 1683524.125, Y: 7133787.0},
	{X: 1683521.25, Y: 7133778.0},
	{X: 1683519.125, Y: 7133760.0},
	{X: 1683501.875, Y: 7133759.0},
	{X: 1683461.625, Y: 7133766.5},
	{X: 1683445.375, Y: 7133766.0},
	{X: 1683410.875, Y: 7133753.0},
	{X: 1683391.5, Y: 7133742.5},
	{X: 1683382.25, Y: 7133739.0},
	{X: 1683364.625, Y: 7133730.5},
	{X: 1683358.0, Y: 7133724.5},
	{X: 1683336.0, Y: 7133734.0},
	{X: 1683279.625, Y: 7133746.5},
	{X: 1683263.5, Y: 7133748.5},
	{X: 1683247.375, Y: 7133744.0},
	{X: 1683231.0, Y: 7133732.0},
	{X: 1683225.75, Y: 7133724.0},
	{X: 1683226.5, Y: 7133707.5},
	{X: 1683234.25, Y: 7133683.5},
	{X: 1683236.25, Y: 7133659.0},
	{X: 1683238.25, Y: 7133651.0},
	{X: 1683238.5, Y: 7133643.0},
	{X: 1683230.375, Y: 7133637.0},
	{X: 1683222.375, Y: 7133643.5},
	{X: 1683189.375, Y: 7133700.5},
	{X: 1683179.375, Y: 7133717.0},
	{X: 1683171.625, Y: 7133725.0},
	{X: 1683151.625, Y: 7133730.0},
	{X: 1683156.625, Y: 7133738.0},
	{X: 1683154.125, Y: 7133746.0},
	{X: 1683148.0, Y: 7133754.5},
	{X: 1683124.5, Y: 7133777.5},
	{X: 1683110.25, Y: 7133794.0},
	{X: 1683106.125, Y: 7133802.5},
	{X: 1683094.5, Y: 7133835.0},
	{X: 1683085.0, Y: 7133851.0},
	{X: 1683077.125, Y: 7133858.5},
	{X: 1683070.75, Y: 7133867.0},
	{X: 1683037.375, Y: 7133934.5},
	{X: 1683024.875, Y: 7133972.0},
	{X: 1683007.125, Y: 7134007.0},
	{X: 1682994.375, Y: 7134045.0},
	{X: 1682977.0, Y: 7134078.5},
	{X: 1682969.0, Y: 7134083.5},
	{X: 1682952.875, Y: 7134082.5},
	{X: 1682944.625, Y: 7134078.5},
	{X: 1682928.375, Y: 7134066.0},
	{X: 1682920.25, Y: 7134062.0},
	{X: 1682912.125, Y: 7134063.5},
	{X: 1682904.125, Y: 7134070.0},
	{X: 1682882.375, Y: 7134095.0},
	{X: 1682866.25, Y: 7134121.5},
	{X: 1682858.75, Y: 7134140.5},
	{X: 1682858.0, Y: 7134148.5},
	{X: 1682862.75, Y: 7134156.5},
	{X: 1682915.625, Y: 7134212.0},
	{X: 1682929.125, Y: 7134230.5},
	{X: 1682937.25, Y: 7134238.0},
	{X: 1682960.5, Y: 7134248.5},
	{X: 1682968.625, Y: 7134253.0},
	{X: 1682976.75, Y: 7134253.0},
	{X: 1682984.75, Y: 7134249.0},
	{X: 1683000.75, Y: 7134238.5},
	{X: 1683016.75, Y: 7134230.5},
	{X: 1683024.875, Y: 7134229.0},
	{X: 1683033.0, Y: 7134233.5},
	{X: 1683041.25, Y: 7134241.5},
	{X: 1683049.375, Y: 7134246.0},
	{X: 1683065.625, Y: 7134253.0},
	{X: 1683106.125, Y: 7134257.0},
	{X: 1683138.5, Y: 7134257.0},
	{X: 1683163.25, Y: 7134252.0},
	{X: 1683171.375, Y: 7134255.5},
	{X: 1683173.5, Y: 7134222.5},
	{X: 1683178.5, Y: 7134206.5},
	{X: 1683184.375, Y: 7134190.0},
	{X: 1683190.375, Y: 7134182.0},
	{X: 1683206.375, Y: 7134169.0},
}

var testRing2 = []geom.Point{
	{X: 1683589.25, Y: 7133882.0},
	{X: 1683565.625, Y: 7133859.0},
	{X: 1683561.375, Y: 7133851.0},
	{X: 1683553.125, Y: 7133827.0},
	{X: 1683543.875, Y: 7133811.0},
	{X: 1683529.5, Y: 7133795.0},
	{X: 1683518.375, Y: 7133795.5},
	{X: 1683486.25, Y: 7133807.0},
	{X: 1683470.125, Y: 7133811.5},
	{X: 1683454.0, Y: 7133815.0},
	{X: 1683446.0, Y: 7133818.5},
	{X: 1683438.0, Y: 7133824.0},
	{X: 1683424.5, Y: 7133840.5},
	{X: 1683399.375, Y: 7133881.5},
	{X: 1683367.375, Y: 7133903.0},
	{X: 1683351.25, Y: 7133910.5},
	{X: 1683311.125, Y: 7133923.0},
	{X: 1683279.0, Y: 7133938.5},
	{X: 1683263.0, Y: 7133950.0},
	{X: 1683255.125, Y: 7133958.0},
	{X: 1683245.25, Y: 7133982.5},
	{X: 1683229.5, Y: 7134015.0},
	{X: 1683223.125, Y: 7134023.5},
	{X: 1683200.5, Y: 7134068.5},
	{X: 1683200.625, Y: 7134077.0},
	{X: 1683206.5, Y: 7134101.0},
	{X: 1683193.625, Y: 7134117.5},
	{X: 1683189.625, Y: 7134125.5},
	{X: 1683188.875, Y: 7134133.5},
	{X: 1683193.875, Y: 7134149.5},
	{X: 1683198.0, Y: 7134157.5},
	{X: 1683206.375, Y: 7134169.0},
	{X: 1683230.375, Y: 7134152.0},
	{X: 1683246.375, Y: 7134144.5},
	{X: 1683270.5, Y: 7134138.5},
	{X: 1683302.75, Y: 7134134.0},
	{X: 1683335.5, Y: 7134135.0},
	{X: 1683391.375, Y: 7134134.5},
	{X: 1683415.625, Y: 7134131.5},
	{X: 1683431.625, Y: 7134125.5},
	{X: 1683439.625, Y: 7134120.5},
	{X: 1683446.75, Y: 7134112.0},
	{X: 1683450.0, Y: 7134104.0},
	{X: 1683450.75, Y: 7134096.0},
	{X: 1683450.0, Y: 7134088.0},
	{X: 1683447.625, Y: 7134080.0},
	{X: 1683447.125, Y: 7134071.5},
	{X: 1683454.25, Y: 7134063.5},
	{X: 1683462.25, Y: 7134059.5},
	{X: 1683502.375, Y: 7134035.5},
	{X: 1683534.25, Y: 7134012.5},
	{X: 1683547.0, Y: 7133996.0},
	{X: 1683554.875, Y: 7133980.0},
	{X: 1683561.125, Y: 7133953.0},
	{X: 1683561.625, Y: 7133925.5},
	{X: 1683563.875, Y: 7133906.5},
	{X: 1683570.875, Y: 7133890.0},
	{X: 1683578.875, Y: 7133884.0},
	{X: 1683589.25, Y: 7133882.0},
}

// testWKT2 is testRing2 in well-known text.
const testWKT2 = "POLYGON((1683589.2500000000000000 7133882.0000000000000000, 1683565.6250000000000000 7133859.0000000000000000, 1683561.3750000000000000 7133851.0000000000000000, 1683553.1250000000000000 7133827.0000000000000000, 1683543.8750000000000000 7133811.0000000000000000, 1683529.5000000000000000 7133795.0000000000000000, 1683518.3750000000000000 7133795.5000000000000000, 1683486.2500000000000000 7133807.0000000000000000, 1683470.1250000000000000 7133811.5000000000000000, 1683454.0000000000000000 7133815.0000000000000000, 1683446.0000000000000000 7133818.5000000000000000, 1683438.0000000000000000 7133824.0000000000000000, 1683424.5000000000000000 7133840.5000000000000000, 1683399.3750000000000000 7133881.5000000000000000, 1683367.3750000000000000 7133903.0000000000000000, 1683351.2500000000000000 7133910.5000000000000000, 1683311.1250000000000000 7133923.0000000000000000, 1683279.0000000000000000 7133938.5000000000000000, 1683263.0000000000000000 7133950.0000000000000000, 1683255.1250000000000000 7133958.0000000000000000, 1683245.2500000000000000 7133982.5000000000000000, 1683229.5000000000000000 7134015.0000000000000000, 1683223.1250000000000000 7134023.5000000000000000, 1683200.5000000000000000 7134068.5000000000000000, 1683200.6250000000000000 7134077.0000000000000000, 1683206.5000000000000000 7134101.0000000000000000, 1683193.6250000000000000 7134117.5000000000000000, 1683189.6250000000000000 7134125.5000000000000000, 1683188.8750000000000000 7134133.5000000000000000, 1683193.8750000000000000 7134149.5000000000000000, 1683198.0000000000000000 7134157.5000000000000000, 1683206.3750000000000000 7134169.0000000000000000, 1683230.3750000000000000 7134152.0000000000000000, 1683246.3750000000000000 7134144.5000000000000000, 1683270.5000000000000000 7134138.5000000000000000, 1683302.7500000000000000 7134134.0000000000000000, 1683335.5000000000000000 7134135.0000000000000000, 1683391.3750000000000000 7134134.5000000000000000, 1683415.6250000000000000 7134131.5000000000000000, 1683431.6250000000000000 7134125.5000000000000000, 1683439.6250000000000000 7134120.5000000000000000, 1683446.7500000000000000 7134112.0000000000000000, 1683450.0000000000000000 7134104.0000000000000000, 1683450.7500000000000000 7134096.0000000000000000, 1683450.0000000000000000 7134088.0000000000000000, 1683447.6250000000000000 7134080.0000000000000000, 1683447.1250000000000000 7134071.5000000000000000, 1683454.2500000000000000 7134063.5000000000000000, 1683462.2500000000000000 7134059.5000000000000000, 1683502.3750000000000000 7134035.5000000000000000, 1683534.2500000000000000 7134012.5000000000000000, 1683547.0000000000000000 7133996.0000000000000000, 1683554.8750000000000000 7133980.0000000000000000, 1683561.1250000000000000 7133953.0000000000000000, 1683561.6250000000000000 7133925.5000000000000000, 1683563.8750000000000000 7133906.5000000000000000, 1683570.8750000000000000 7133890.0000000000000000, 1683578.8750000000000000 7133884.0000000000000000, 1683589.2500000000000000 7133882.0000000000000000))"
