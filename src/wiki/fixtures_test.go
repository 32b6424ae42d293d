package wiki

// HTML fixtures trimmed from real article pages. The wrapper divs mirror the
// wiki's current template (bodyContent > mw-content-ltr > mw-parser-output);
// altWrapperHTML keeps the older template without the ltr div.

const dutyPageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<h3><span class="mw-headline" id="Duties">Duties</span></h3>
<ul>
<li>The Aurum Vale &#8211; miniboss</li>
<li>Brayflox's Longstop (Hard)</li>
</ul>
</div>
</div>
</div>
</body></html>`

const monsterTablePageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<h3><span class="mw-headline" id="Dropped_by">Dropped by</span></h3>
<table class="item">
<tbody>
<tr><th>Name</th><th>Level</th><th>Location</th></tr>
<tr><td>Gold Whisker
</td><td>47
</td><td>Old Gridania (12.3, 34.5)
</td></tr>
<tr><td>Daring Harrier</td><td>50</td><td>Mor Dhona</td></tr>
</tbody>
</table>
</div>
</div>
</div>
</body></html>`

const vendorPageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<h2><span class="mw-headline" id="Acquisition">Acquisition</span></h2>
<h3><span class="mw-headline" id="Purchased_From">Purchased From</span></h3>
<table class="npc">
<tbody>
<tr><th>Vendor</th><th>Location</th><th>Cost</th></tr>
<tr><td>Z'ranmaia
</td><td>Upper Decks (11.1, 11.2)
</td><td>216&#160;<span><a href="/wiki/Gil" title="Gil">Gil</a></span>
</td></tr>
<tr><td>Apartment Merchant</td><td>Topmast Apartment Lobby</td><td>500</td></tr>
</tbody>
</table>
</div>
</div>
</div>
</body></html>`

const recipePageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<div class="recipe-box">
<div class="wrapper">
<dl>
<dt>Yield</dt><dd>1</dd>
<dt>Difficulty</dt><dd>55</dd>
<dt>Class</dt><dd><a href="/wiki/Recipes">Recipes</a> <a href="/wiki/Culinarian">Culinarian</a></dd>
<dt>Level</dt><dd>Level 25</dd>
</dl>
</div>
</div>
</div>
</div>
</div>
</body></html>`

const treasurePageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<h3><span class="mw-headline" id="Treasure_Hunt">Treasure Hunt</span></h3>
<ul>
<li>Acquired from <a href="/wiki/Timeworn_Boarskin_Map" title="Timeworn Boarskin Map">Timeworn Boarskin Map</a></li>
<li>Acquired from <a href="/wiki/Timeworn_Toadskin_Map" title="Timeworn Toadskin Map">Timeworn Toadskin Map</a></li>
</ul>
</div>
</div>
</div>
</body></html>`

const desynthesisPageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<h3><span class="mw-headline" id="Desynthesis">Desynthesis</span></h3>
<ul>
<li>Obtained by desynthesizing <a href="/wiki/Peisteskin_Ring">Peisteskin Ring</a></li>
</ul>
<h3><span class="mw-headline" id="Other">Other</span></h3>
<ul>
<li>Unrelated <a href="/wiki/Elsewhere">Elsewhere</a></li>
</ul>
</div>
</div>
</div>
</body></html>`

const gatheringListPageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<h3><span class="mw-headline" id="Gathering">Gathering</span></h3>
<ul>
<li>Level 50 Harvesting: <a href="/wiki/Lush_Vegetation_Patch">Lush Vegetation Patch</a> in <a href="/wiki/The_Dravanian_Forelands">The Dravanian Forelands</a> - <a href="/wiki/Chocobo_Forest">Chocobo Forest</a> (x32.1, y23.4)</li>
<li>Level 55 Logging: <a href="/wiki/Mature_Tree">Mature Tree</a> in <a href="/wiki/The_Churning_Mists">The Churning Mists</a> - <a href="/wiki/Sohm_Al_Foothills">Sohm Al Foothills</a> (11, 12)</li>
</ul>
</div>
</div>
</div>
</body></html>`

const aetherialReductionPageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<h3><span class="mw-headline" id="Gathering">Gathering</span></h3>
<ul>
<li>Obtained by Aetherial Reduction of the following items:</li>
<li>Level 58 <a href="/wiki/Harvesting">Harvesting</a>: <a href="/wiki/Windtea_Leaves">Windtea Leaves</a></li>
<li>Level 60 <a href="/wiki/Mining">Mining</a>: <a href="/wiki/Glaring_Crystal">Glaring Crystal</a></li>
</ul>
</div>
</div>
</div>
</body></html>`

const gatheredBlockPageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<h3><span class="mw-headline" id="Gathered">Gathered</span></h3>
<div>Level 60 <a href="/wiki/Mining_Point">Mining Point</a> - <a href="/wiki/The_Churning_Mists">The Churning Mists</a> (27.3, 11.5), available from 10:00 am to 12:00 pm</div>
</div>
</div>
</div>
</body></html>`

const gatheringRolePageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<table class="gathering-role">
<tbody>
<tr><th>Node</th><th>Zone</th><th>Level</th><th>Coordinates</th></tr>
<tr><td><img src="/images/botanist.png"/>Dark Chestnut Log</td><td><a href="/wiki/The_Dravanian_Hinterlands">The Dravanian Hinterlands</a> - <a href="/wiki/The_Answering_Quarter">The Answering Quarter</a></td><td>58<br/>&#9733;&#9733;</td><td>(26.8, 20.2)</td></tr>
<tr><td><img src="/images/miner.png"/>Mythrite Ore</td><td><a href="/wiki/Coerthas_Western_Highlands">Coerthas Western Highlands</a></td><td>53</td><td>(31, 14)</td></tr>
</tbody>
</table>
</div>
</div>
</div>
</body></html>`

// fullPageHTML carries a monster table and a gathering list together. The
// shapes are mutually exclusive on real pages; this exercises extractor
// independence.
const fullPageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<h3><span class="mw-headline" id="Dropped_by">Dropped by</span></h3>
<table class="item">
<tbody>
<tr><th>Name</th><th>Level</th><th>Location</th></tr>
<tr><td>Gold Whisker</td><td>47</td><td>Old Gridania (12.3, 34.5)</td></tr>
</tbody>
</table>
<h3><span class="mw-headline" id="Gathering">Gathering</span></h3>
<ul>
<li>Level 50 Harvesting: <a href="/wiki/Lush_Vegetation_Patch">Lush Vegetation Patch</a> in <a href="/wiki/The_Dravanian_Forelands">The Dravanian Forelands</a> - <a href="/wiki/Chocobo_Forest">Chocobo Forest</a> (32.1, 23.4)</li>
</ul>
<h2><span class="mw-headline" id="Acquisition">Acquisition</span></h2>
<table class="npc">
<tbody>
<tr><th>Vendor</th><th>Location</th><th>Cost</th></tr>
<tr><td>Material Supplier</td><td>The Lavender Beds (11.9, 8.3)</td><td>18&#160;<span><a href="/wiki/Gil" title="Gil">Gil</a></span></td></tr>
</tbody>
</table>
</div>
</div>
</div>
</body></html>`

const emptyPageHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-content-ltr">
<div class="mw-parser-output">
<p>This article is a stub.</p>
</div>
</div>
</div>
</body></html>`

const noContentHTML = `<!DOCTYPE html>
<html><body>
<div id="content"><p>Nothing to see.</p></div>
</body></html>`

// altWrapperHTML uses the older page template without the mw-content-ltr
// wrapper.
const altWrapperHTML = `<!DOCTYPE html>
<html><body>
<div id="bodyContent">
<div class="mw-parser-output">
<h3><span class="mw-headline" id="Duties">Duties</span></h3>
<ul>
<li>Sastasha</li>
</ul>
</div>
</div>
</body></html>`
